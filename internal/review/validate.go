// Package review implements the code review pipeline: prompt construction,
// model invocation, response validation, code block extraction and the
// advisory syntax check.
package review

import "regexp"

// The model response must contain all four bolded section markers, each at
// the start of its own line. Every marker is matched independently with a
// multiline anchor; relative order between the sections is not enforced.
var requiredSections = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\*\*Issues:\*\*`),
	regexp.MustCompile(`(?m)^\*\*Corrected Code \(Preserve Indentation\):\*\*`),
	regexp.MustCompile(`(?m)^\*\*Optimized Code:\*\*`),
	regexp.MustCompile(`(?m)^\*\*Explanation:\*\*`),
}

// ValidateFormat reports whether the raw model response carries all
// required section markers. A single missing marker rejects the response
// wholesale; no partial content is salvaged.
func ValidateFormat(response string) bool {
	for _, section := range requiredSections {
		if !section.MatchString(response) {
			return false
		}
	}
	return true
}
