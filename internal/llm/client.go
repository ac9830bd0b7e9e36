// Package llm provides prompt construction and access to the text
// generation backend.
package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sevigo/goframe/llms"

	"github.com/sevigo/code-critic/internal/core"
)

const defaultRequestTimeout = 2 * time.Minute

// Generator is the subset of llms.Model the review pipeline needs.
type Generator interface {
	Call(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error)
}

// Client sends prompts to the model backend. One outbound call per review,
// no retries; failures surface immediately as *core.APIError. Identical
// prompts within the cache TTL are served from memory without a new call.
type Client struct {
	gen     Generator
	timeout time.Duration
	cache   *gocache.Cache
	logger  *slog.Logger
}

// NewClient creates a Client around a generator model. A cacheTTL of zero or
// less disables response caching.
func NewClient(gen Generator, timeout, cacheTTL time.Duration, logger *slog.Logger) *Client {
	if gen == nil {
		panic("generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	var responseCache *gocache.Cache
	if cacheTTL > 0 {
		responseCache = gocache.New(cacheTTL, 2*cacheTTL)
	}

	return &Client{
		gen:     gen,
		timeout: timeout,
		cache:   responseCache,
		logger:  logger,
	}
}

// Generate sends the prompt and returns the raw response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	key := promptKey(prompt)
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			c.logger.Debug("serving model response from cache")
			return cached.(string), nil
		}
	}

	start := time.Now()
	response, err := c.generateWithTimeout(ctx, prompt)
	if err != nil {
		c.logger.Error("model call failed", "error", err, "elapsed", time.Since(start))
		return "", &core.APIError{Err: err}
	}
	c.logger.Debug("model call completed", "elapsed", time.Since(start), "response_bytes", len(response))

	if c.cache != nil {
		c.cache.Set(key, response, gocache.DefaultExpiration)
	}
	return response, nil
}

// generateWithTimeout wraps the model call with a hard timeout. Some
// providers do not honor context deadlines inside their transport, so the
// call runs on its own goroutine.
func (c *Client) generateWithTimeout(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type result struct {
		resp string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		resp, err := c.gen.Call(ctx, prompt)
		select {
		case resultCh <- result{resp, err}:
		case <-ctx.Done():
		}
	}()

	select {
	case res := <-resultCh:
		return res.resp, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
