package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/sevigo/code-critic/internal/app"
	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/wire"
)

func initializeAppCmd() tea.Cmd {
	return func() tea.Msg {
		application, _, err := wire.InitializeApp(context.Background())
		if err != nil {
			return appInitializedMsg{err: err}
		}
		return appInitializedMsg{app: application}
	}
}

func runReviewCmd(application *app.App, lang core.Language, code string) tea.Cmd {
	return func() tea.Msg {
		result := application.Reviewer.Review(context.Background(), core.ReviewRequest{
			Language: lang,
			Code:     code,
		})
		return reviewCompleteMsg{result: result}
	}
}

// renderMarkdown pretty-prints the review for the viewport. On any
// rendering problem the raw text is shown instead.
func renderMarkdown(markdown string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
