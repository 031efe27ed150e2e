package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vernala/vernala-backend/internal/domain"
	"github.com/vernala/vernala-backend/internal/service/translate"
)

type translateService interface {
	Translate(ctx context.Context, req translate.Request) (*translate.Result, error)
}

// TranslateHandler serves GET /translate.
type TranslateHandler struct {
	svc translateService
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(log *slog.Logger, svc translateService) *TranslateHandler {
	return &TranslateHandler{svc: svc, log: log}
}

// QueryInfo echoes the translate request parameters back to the caller.
type QueryInfo struct {
	Source string  `json:"source"`
	Target *string `json:"target"`
	Word   string  `json:"word"`
	Match  string  `json:"match"`
}

// TranslateResponse is the JSON body of a successful translate request.
type TranslateResponse struct {
	Query   QueryInfo                  `json:"query"`
	Results []domain.TranslationResult `json:"results"`
	Count   int                        `json:"count"`
}

// Translate parses the query parameters, runs the lookup, and writes
// the echo-query-plus-results response.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	req := translate.Request{
		SourceLang: params.Get("source"),
		Word:       params.Get("word"),
		Match:      params.Get("match"),
	}
	if target := params.Get("target"); target != "" {
		req.TargetLang = &target
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		req.Limit = limit
	}

	result, err := h.svc.Translate(r.Context(), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, TranslateResponse{
		Query: QueryInfo{
			Source: result.Query.SourceLang,
			Target: result.Query.TargetLang,
			Word:   result.Query.Word,
			Match:  string(result.Query.Match),
		},
		Results: result.Translations,
		Count:   len(result.Translations),
	})
}
