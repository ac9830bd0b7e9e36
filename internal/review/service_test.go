package review

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/llm"
	"github.com/sevigo/code-critic/internal/syntax"
	"github.com/sevigo/code-critic/mocks"
)

func validResponse(correctedCode string) string {
	return "**Issues:** Found a missing newline.\n\n" +
		"**Corrected Code (Preserve Indentation):**\n" +
		"```python\n" + correctedCode + "\n```\n\n" +
		"**Optimized Code:**\n" +
		"```python\n" + correctedCode + "\n```\n\n" +
		"**Explanation:** The optimized version is equivalent.\n"
}

func newTestService(t *testing.T, gen llm.Generator, cacheTTL time.Duration) *Service {
	t.Helper()

	prompts, err := llm.NewPromptManager()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := llm.NewClient(gen, 5*time.Second, cacheTTL, logger)
	return NewService(prompts, client, syntax.NewRegistry(), logger)
}

func TestService_Review_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Call(gomock.Any(), gomock.Any()).Return(validResponse("def f(): return 1"), nil)

	svc := newTestService(t, gen, 0)
	result := svc.Review(context.Background(), core.ReviewRequest{
		Language: core.LangPython,
		Code:     "def f(): return 1\n",
	})

	assert.Empty(t, result.Error)
	require.NotEmpty(t, result.Review)
	assert.Equal(t, validResponse("def f(): return 1"), result.Review, "clean code must not gain a syntax annotation")
	assert.Equal(t, "def f(): return 1", result.Code, "input is trimmed")
}

func TestService_Review_PromptCarriesLanguageAndCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	var capturedPrompt string
	gen.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string, _ ...llms.CallOption) (string, error) {
			capturedPrompt = prompt
			return validResponse("def f(): return 1"), nil
		})

	svc := newTestService(t, gen, 0)
	svc.Review(context.Background(), core.ReviewRequest{
		Language: core.LangPython,
		Code:     "def f(): return 1",
		Guidance: "- prefer comprehensions",
	})

	assert.Contains(t, capturedPrompt, "Code Review Task for Python")
	assert.Contains(t, capturedPrompt, "```python\ndef f(): return 1\n```")
	assert.Contains(t, capturedPrompt, "- prefer comprehensions")
}

func TestService_Review_SyntaxAnnotationAppended(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Call(gomock.Any(), gomock.Any()).Return(validResponse("def f(: return 1"), nil)

	svc := newTestService(t, gen, 0)
	result := svc.Review(context.Background(), core.ReviewRequest{
		Language: core.LangPython,
		Code:     "def f(: return 1",
	})

	assert.Empty(t, result.Error, "syntax problems in generated code are advisory, not hard failures")
	assert.Contains(t, result.Review, "Syntax error in generated code")
	assert.True(t, strings.HasPrefix(result.Review, validResponse("def f(: return 1")),
		"annotation must be appended after the full review text")
}

func TestService_Review_SkipSyntaxCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Call(gomock.Any(), gomock.Any()).Return(validResponse("def f(: return 1"), nil)

	svc := newTestService(t, gen, 0)
	result := svc.Review(context.Background(), core.ReviewRequest{
		Language:        core.LangPython,
		Code:            "def f(: return 1",
		SkipSyntaxCheck: true,
	})

	assert.Empty(t, result.Error)
	assert.NotContains(t, result.Review, "Syntax error")
}

func TestService_Review_NoCheckerForOtherLanguages(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	response := "**Issues:** none\n" +
		"**Corrected Code (Preserve Indentation):**\n" +
		"```go\nfunc f( {}\n```\n" +
		"**Optimized Code:**\n" +
		"**Explanation:** done\n"
	gen.EXPECT().Call(gomock.Any(), gomock.Any()).Return(response, nil)

	svc := newTestService(t, gen, 0)
	result := svc.Review(context.Background(), core.ReviewRequest{
		Language: core.LangGo,
		Code:     "func f( {}",
	})

	assert.Empty(t, result.Error)
	assert.NotContains(t, result.Review, "Syntax error")
}

func TestService_Review_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Call(gomock.Any(), gomock.Any()).Return("", errors.New("service unavailable"))

	svc := newTestService(t, gen, 0)
	result := svc.Review(context.Background(), core.ReviewRequest{
		Language: core.LangPython,
		Code:     "x = 1",
	})

	assert.Empty(t, result.Review)
	require.NotEmpty(t, result.Error)
	assert.True(t, strings.HasPrefix(result.Error, "API Error:"), "got: %s", result.Error)
}

func TestService_Review_InvalidFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	// Response missing the Explanation header is rejected wholesale.
	response := "**Issues:** none\n" +
		"**Corrected Code (Preserve Indentation):**\n" +
		"**Optimized Code:**\n"
	gen.EXPECT().Call(gomock.Any(), gomock.Any()).Return(response, nil)

	svc := newTestService(t, gen, 0)
	result := svc.Review(context.Background(), core.ReviewRequest{
		Language: core.LangPython,
		Code:     "x = 1",
	})

	assert.Empty(t, result.Review)
	assert.Equal(t, "Invalid response format from AI model", result.Error)
}

func TestService_Review_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	// No model call expected.

	svc := newTestService(t, gen, 0)
	result := svc.Review(context.Background(), core.ReviewRequest{
		Language: core.LangPython,
		Code:     "   \n\t  ",
	})

	assert.Empty(t, result.Review)
	assert.Equal(t, core.ErrEmptyInput.Error(), result.Error)
}

func TestService_Review_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Call(gomock.Any(), gomock.Any()).Return(validResponse("def f(): return 1"), nil).Times(1)

	svc := newTestService(t, gen, time.Minute)
	req := core.ReviewRequest{Language: core.LangPython, Code: "def f(): return 1"}

	first := svc.Review(context.Background(), req)
	second := svc.Review(context.Background(), req)

	require.Empty(t, first.Error)
	assert.Equal(t, first, second, "repeated invocation with identical input must produce identical output")
}

func TestService_Review_ResultInvariant(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Call(gomock.Any(), gomock.Any()).Return(validResponse("x = 1"), nil).AnyTimes()

	svc := newTestService(t, gen, 0)

	for _, req := range []core.ReviewRequest{
		{Language: core.LangPython, Code: "x = 1"},
		{Language: core.LangPython, Code: ""},
	} {
		result := svc.Review(context.Background(), req)
		oneSet := (result.Review != "") != (result.Error != "")
		assert.True(t, oneSet, "exactly one of review/error must be set: %+v", result)
	}
}
