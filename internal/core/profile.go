package core

// ReviewProfile represents the structure of the .code-critic.yml file.
type ReviewProfile struct {
	// Free-form instructions appended to the review prompt.
	Guidance []string `yaml:"guidance"`

	// Skip the advisory syntax check on generated code.
	SkipSyntaxCheck bool `yaml:"skip_syntax_check"`
}

// DefaultReviewProfile returns a profile with default values.
func DefaultReviewProfile() *ReviewProfile {
	return &ReviewProfile{
		Guidance: []string{},
	}
}
