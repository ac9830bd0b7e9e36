package gitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRelPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "main.py", false},
		{"nested file", "src/app/main.py", false},
		{"dot segment normalized away", "src/./main.py", false},
		{"inner parent segment that stays inside", "src/sub/../main.py", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"absolute path", "/etc/passwd", true},
		{"parent escape", "../secrets.txt", true},
		{"nested parent escape", "src/../../secrets.txt", true},
		{"bare parent", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
