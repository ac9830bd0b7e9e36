// Package syntax provides advisory syntax checking for generated code.
package syntax

import (
	"context"

	"github.com/sevigo/code-critic/internal/core"
)

// Checker parses code for a single language and describes the first syntax
// error found. An empty string means the code parsed cleanly.
type Checker interface {
	Check(ctx context.Context, code string) (string, error)
}

// Registry maps languages to their checkers. Languages without a checker
// are skipped; the check never fails the review, it only annotates it.
type Registry struct {
	checkers map[core.Language]Checker
}

// NewRegistry creates a registry with the built-in checkers. Python is the
// only language with a checker today.
func NewRegistry() *Registry {
	r := &Registry{
		checkers: make(map[core.Language]Checker),
	}
	r.Register(core.LangPython, NewPythonChecker())
	return r
}

// Register adds or replaces the checker for a language.
func (r *Registry) Register(lang core.Language, c Checker) {
	r.checkers[lang] = c
}

// Supports reports whether a checker is registered for the language.
func (r *Registry) Supports(lang core.Language) bool {
	_, ok := r.checkers[lang]
	return ok
}

// Check runs the language's checker when one exists. For all other
// languages it is a no-op returning an empty annotation.
func (r *Registry) Check(ctx context.Context, lang core.Language, code string) (string, error) {
	checker, ok := r.checkers[lang]
	if !ok {
		return "", nil
	}
	return checker.Check(ctx, code)
}
