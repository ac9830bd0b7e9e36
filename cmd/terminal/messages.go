package main

import (
	"github.com/sevigo/code-critic/internal/app"
	"github.com/sevigo/code-critic/internal/core"
)

// Indicates that the core application services have been initialized.
type appInitializedMsg struct {
	app *app.App
	err error
}

// Carries a finished review back to the UI loop.
type reviewCompleteMsg struct {
	result core.ReviewResult
}

// A generic error message for reporting failures from commands.
type errorMsg struct{ err error }

func (e errorMsg) Error() string {
	return e.err.Error()
}
