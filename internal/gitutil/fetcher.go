// Package gitutil fetches source files from git repositories for review.
package gitutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Client reads files out of remote git repositories.
type Client struct {
	logger *slog.Logger
}

// NewClient returns a new Client instance.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{logger: logger}
}

// FetchFile clones the repository shallowly into a temporary directory and
// returns the contents of relPath within it. The clone is removed before
// returning.
func (c *Client) FetchFile(ctx context.Context, repoURL, relPath string) ([]byte, error) {
	if err := ValidateRelPath(relPath); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "code-critic-clone-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			c.logger.Warn("failed to clean up clone directory", "path", dir, "error", rmErr)
		}
	}()

	c.logger.Info("cloning repository", "url", repoURL)
	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          repoURL,
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", repoURL, err)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from repository: %w", relPath, err)
	}
	return data, nil
}

// ValidateRelPath rejects paths that could escape the clone directory.
func ValidateRelPath(relPath string) error {
	if strings.TrimSpace(relPath) == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	if filepath.IsAbs(relPath) || strings.HasPrefix(relPath, "/") {
		return fmt.Errorf("file path must be relative, got %q", relPath)
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(relPath)))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("file path must not escape the repository, got %q", relPath)
	}
	return nil
}
