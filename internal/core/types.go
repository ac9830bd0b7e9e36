// Package core defines the domain types shared across the Code Critic application.
package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Language identifies a programming language the assistant can review.
type Language string

const (
	LangPython     Language = "Python"
	LangJavaScript Language = "JavaScript"
	LangJava       Language = "Java"
	LangCPP        Language = "C++"
	LangGo         Language = "Go"
)

// Languages returns all supported languages in display order.
func Languages() []Language {
	return []Language{LangPython, LangJavaScript, LangJava, LangCPP, LangGo}
}

func (l Language) String() string {
	return string(l)
}

// FenceTags returns the tags accepted on a fenced code block for this
// language. The first entry is the canonical tag used when building prompts.
func (l Language) FenceTags() []string {
	switch l {
	case LangPython:
		return []string{"python", "py"}
	case LangJavaScript:
		return []string{"javascript", "js"}
	case LangJava:
		return []string{"java"}
	case LangCPP:
		return []string{"cpp", "c++"}
	case LangGo:
		return []string{"go", "golang"}
	default:
		return nil
	}
}

// FenceTag returns the canonical fence tag for the language.
func (l Language) FenceTag() string {
	tags := l.FenceTags()
	if len(tags) == 0 {
		return strings.ToLower(string(l))
	}
	return tags[0]
}

// ParseLanguage resolves a user-supplied language name, accepting common
// aliases such as "py", "js" or "golang".
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "python", "py":
		return LangPython, nil
	case "javascript", "js":
		return LangJavaScript, nil
	case "java":
		return LangJava, nil
	case "c++", "cpp", "cxx":
		return LangCPP, nil
	case "go", "golang":
		return LangGo, nil
	default:
		return "", fmt.Errorf("unsupported language: %q", s)
	}
}

// DetectLanguage guesses the language from a file path by extension.
func DetectLanguage(path string) (Language, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py", ".pyw":
		return LangPython, nil
	case ".js", ".mjs", ".cjs":
		return LangJavaScript, nil
	case ".java":
		return LangJava, nil
	case ".cpp", ".cc", ".cxx", ".hpp", ".hh":
		return LangCPP, nil
	case ".go":
		return LangGo, nil
	default:
		return "", fmt.Errorf("cannot detect language from path %q", path)
	}
}

// ReviewRequest carries one piece of user-submitted code through the pipeline.
type ReviewRequest struct {
	Language Language `json:"language"`
	Code     string   `json:"code"`
	// Guidance holds optional per-project review instructions folded into
	// the prompt. Loaded from a .code-critic.yml profile when present.
	Guidance string `json:"guidance,omitempty"`
	// SkipSyntaxCheck suppresses the advisory syntax check on generated code.
	SkipSyntaxCheck bool `json:"skip_syntax_check,omitempty"`
}

// ReviewResult is the outcome of a single review. Exactly one of Review and
// Error is non-empty. The result lives for one request-response cycle and is
// never persisted.
type ReviewResult struct {
	Language Language `json:"language"`
	Code     string   `json:"code"`
	Review   string   `json:"review,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Failed reports whether the review ended in a hard error.
func (r ReviewResult) Failed() bool {
	return r.Error != ""
}

// Reviewer runs a single code review from request to result.
type Reviewer interface {
	Review(ctx context.Context, req ReviewRequest) ReviewResult
}
