package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/code-critic/internal/core"
)

var (
	ErrProfileNotFound = errors.New("review profile not found")
	ErrProfileParsing  = errors.New("review profile parsing failed")
)

// LoadReviewProfile loads and parses the .code-critic.yml file from a
// directory. A missing file is not an error condition for callers: the
// default profile is returned alongside ErrProfileNotFound so they can
// decide whether to mention it.
func LoadReviewProfile(dir string) (*core.ReviewProfile, error) {
	profilePath := filepath.Join(dir, ".code-critic.yml")
	data, err := os.ReadFile(profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.DefaultReviewProfile(), ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to read .code-critic.yml: %w", err)
	}

	profile := core.DefaultReviewProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileParsing, err)
	}
	return profile, nil
}
