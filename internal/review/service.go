package review

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/llm"
	"github.com/sevigo/code-critic/internal/syntax"
)

const syntaxErrorMarker = "🔴"

// Service runs the review pipeline: prompt, model call, format validation,
// code extraction and the advisory syntax check. Each invocation is
// independent and runs synchronously on the calling goroutine; the only
// suspension point is the model call.
type Service struct {
	prompts  *llm.PromptManager
	client   *llm.Client
	checkers *syntax.Registry
	logger   *slog.Logger
}

// NewService creates the review pipeline service.
func NewService(prompts *llm.PromptManager, client *llm.Client, checkers *syntax.Registry, logger *slog.Logger) *Service {
	if prompts == nil {
		panic("prompt manager cannot be nil")
	}
	if client == nil {
		panic("llm client cannot be nil")
	}
	if checkers == nil {
		checkers = syntax.NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		prompts:  prompts,
		client:   client,
		checkers: checkers,
		logger:   logger,
	}
}

// Review produces a structured critique for the submitted code. The result
// carries either the full review text or a single user-visible error
// message, never both.
func (s *Service) Review(ctx context.Context, req core.ReviewRequest) core.ReviewResult {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return s.fail(req, code, core.ErrEmptyInput)
	}

	prompt, err := s.prompts.Render(llm.CodeReviewPrompt, llm.DefaultProvider, llm.ReviewPromptData{
		Language: req.Language.String(),
		FenceTag: req.Language.FenceTag(),
		Code:     code,
		Guidance: strings.TrimSpace(req.Guidance),
	})
	if err != nil {
		s.logger.Error("failed to render review prompt", "error", err, "language", req.Language)
		return s.fail(req, code, err)
	}

	s.logger.Info("requesting code review", "language", req.Language, "code_bytes", len(code))
	response, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return s.fail(req, code, err)
	}

	if !ValidateFormat(response) {
		s.logger.Warn("model response rejected, missing required sections", "language", req.Language)
		return s.fail(req, code, core.ErrInvalidFormat)
	}

	if !req.SkipSyntaxCheck {
		if annotation := s.checkGeneratedCode(ctx, req.Language, response); annotation != "" {
			response += "\n\n" + syntaxErrorMarker + " " + annotation
		}
	}

	return core.ReviewResult{
		Language: req.Language,
		Code:     code,
		Review:   response,
	}
}

// checkGeneratedCode extracts the corrected snippet and runs the advisory
// syntax check on it. Failures of the checker itself are logged and
// swallowed; they must not break an otherwise successful review.
func (s *Service) checkGeneratedCode(ctx context.Context, lang core.Language, response string) string {
	if !s.checkers.Supports(lang) {
		return ""
	}

	blocks := ExtractCodeBlocks(response, lang)
	if blocks.Corrected == "" {
		return ""
	}

	annotation, err := s.checkers.Check(ctx, lang, blocks.Corrected)
	if err != nil {
		s.logger.Warn("syntax check failed", "error", err, "language", lang)
		return ""
	}
	return annotation
}

func (s *Service) fail(req core.ReviewRequest, code string, err error) core.ReviewResult {
	return core.ReviewResult{
		Language: req.Language,
		Code:     code,
		Error:    err.Error(),
	}
}
