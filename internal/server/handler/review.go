// Package handler provides the HTTP handlers for the Code Critic API.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sevigo/code-critic/internal/core"
)

// ReviewHandler serves code review requests.
type ReviewHandler struct {
	reviewer core.Reviewer
	logger   *slog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewer core.Reviewer, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewer: reviewer,
		logger:   logger,
	}
}

type reviewRequestBody struct {
	Language        string `json:"language"`
	Code            string `json:"code"`
	Guidance        string `json:"guidance,omitempty"`
	SkipSyntaxCheck bool   `json:"skip_syntax_check,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Create runs one review synchronously and writes the result. Empty input
// and unknown languages are caller mistakes (400); model transport and
// format failures map to 502 since the upstream service misbehaved.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body reviewRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	lang, err := core.ParseLanguage(body.Language)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(body.Code) == "" {
		h.writeError(w, http.StatusBadRequest, core.ErrEmptyInput.Error())
		return
	}

	result := h.reviewer.Review(r.Context(), core.ReviewRequest{
		Language:        lang,
		Code:            body.Code,
		Guidance:        body.Guidance,
		SkipSyntaxCheck: body.SkipSyntaxCheck,
	})

	if result.Failed() {
		h.logger.Warn("review failed", "language", lang, "error", result.Error)
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: result.Error})
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// Languages lists the languages available for review.
func (h *ReviewHandler) Languages(w http.ResponseWriter, _ *http.Request) {
	langs := core.Languages()
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.String()
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"languages": names})
}

func (h *ReviewHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *ReviewHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
