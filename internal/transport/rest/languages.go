package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vernala/vernala-backend/internal/domain"
)

type languageService interface {
	List(ctx context.Context) ([]domain.LanguageInfo, error)
	Stats(ctx context.Context) (*domain.StoreStats, error)
}

// LanguageHandler serves GET /languages and GET /stats.
type LanguageHandler struct {
	svc languageService
	log *slog.Logger
}

// NewLanguageHandler creates a LanguageHandler.
func NewLanguageHandler(log *slog.Logger, svc languageService) *LanguageHandler {
	return &LanguageHandler{svc: svc, log: log}
}

// LanguagesResponse is the JSON body of a successful languages request.
type LanguagesResponse struct {
	Languages []domain.LanguageInfo `json:"languages"`
	Count     int                   `json:"count"`
}

// Languages lists every language present in the store with its display
// name, role, and word count.
func (h *LanguageHandler) Languages(w http.ResponseWriter, r *http.Request) {
	infos, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, LanguagesResponse{
		Languages: infos,
		Count:     len(infos),
	})
}

// Stats reports aggregate word, translation, and language counts.
func (h *LanguageHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
