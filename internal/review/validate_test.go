package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const wellFormedResponse = `**Issues:** None worth mentioning.

**Corrected Code (Preserve Indentation):**
` + "```python\ndef f(): return 1\n```" + `

**Optimized Code:**
` + "```python\ndef f(): return 1\n```" + `

**Explanation:** Nothing to optimize.
`

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{
			name:     "all sections present",
			response: wellFormedResponse,
			want:     true,
		},
		{
			name: "sections out of order still accepted",
			response: "**Explanation:** last first\n" +
				"**Optimized Code:**\n" +
				"**Issues:** none\n" +
				"**Corrected Code (Preserve Indentation):**\n",
			want: true,
		},
		{
			name:     "missing explanation",
			response: strings.Replace(wellFormedResponse, "**Explanation:**", "Explanation:", 1),
			want:     false,
		},
		{
			name:     "missing issues",
			response: strings.Replace(wellFormedResponse, "**Issues:**", "", 1),
			want:     false,
		},
		{
			name:     "missing corrected code header",
			response: strings.Replace(wellFormedResponse, "**Corrected Code (Preserve Indentation):**", "**Corrected Code:**", 1),
			want:     false,
		},
		{
			name:     "missing optimized code header",
			response: strings.Replace(wellFormedResponse, "**Optimized Code:**", "", 1),
			want:     false,
		},
		{
			name:     "marker must start its line",
			response: strings.Replace(wellFormedResponse, "**Issues:**", "Summary: **Issues:**", 1),
			want:     false,
		},
		{
			name:     "empty response",
			response: "",
			want:     false,
		},
		{
			name:     "freeform answer without sections",
			response: "Here is my review of your code. It looks fine overall.",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateFormat(tt.response))
		})
	}
}
