package httpapi

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Dashboard serves the single-page league dashboard. All data on the
// page is fetched client side from the /v1 endpoints.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Dashboard")
	defer span.End()

	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "dashboard unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func staticHandler() http.Handler {
	return http.FileServer(http.FS(staticFiles))
}
