package review

import (
	"regexp"
	"strings"
	"sync"

	"github.com/sevigo/code-critic/internal/core"
)

// CodeBlocks holds the code snippets pulled from a validated response.
// Empty fields mean no matching fenced block was found; that is not an
// error at this stage.
type CodeBlocks struct {
	Corrected string
	Optimized string
}

var (
	fencePatternsMu sync.Mutex
	fencePatterns   = map[core.Language]*regexp.Regexp{}
)

// ExtractCodeBlocks locates the fenced code blocks tagged with the given
// language. The corrected snippet is the first matching block; the
// optimized snippet is the second when the model emitted one, otherwise it
// falls back to the first block serving both slots.
func ExtractCodeBlocks(response string, lang core.Language) CodeBlocks {
	pattern := fencePattern(lang)
	if pattern == nil {
		return CodeBlocks{}
	}

	matches := pattern.FindAllStringSubmatch(response, 2)
	if len(matches) == 0 {
		return CodeBlocks{}
	}

	blocks := CodeBlocks{
		Corrected: strings.TrimSpace(matches[0][1]),
	}
	if len(matches) > 1 {
		blocks.Optimized = strings.TrimSpace(matches[1][1])
	} else {
		blocks.Optimized = blocks.Corrected
	}
	return blocks
}

// fencePattern compiles (and caches) the regexp matching a fenced block
// tagged with any of the language's accepted tags, case-insensitively.
func fencePattern(lang core.Language) *regexp.Regexp {
	fencePatternsMu.Lock()
	defer fencePatternsMu.Unlock()

	if pattern, ok := fencePatterns[lang]; ok {
		return pattern
	}

	tags := lang.FenceTags()
	if len(tags) == 0 {
		return nil
	}
	quoted := make([]string, len(tags))
	for i, tag := range tags {
		quoted[i] = regexp.QuoteMeta(tag)
	}

	pattern := regexp.MustCompile(`(?is)` + "```" + `(?:` + strings.Join(quoted, "|") + `)[ \t]*\r?\n(.*?)` + "```")
	fencePatterns[lang] = pattern
	return pattern
}
