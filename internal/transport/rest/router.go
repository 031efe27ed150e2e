package rest

import "net/http"

// NewRouter builds the HTTP route table. All endpoints are read-only.
func NewRouter(translate *TranslateHandler, language *LanguageHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /translate", translate.Translate)
	mux.HandleFunc("GET /languages", language.Languages)
	mux.HandleFunc("GET /stats", language.Stats)

	mux.HandleFunc("GET /healthz", health.Live)
	mux.HandleFunc("GET /readyz", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
