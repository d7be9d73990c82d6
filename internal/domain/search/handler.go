package search

import (
	"encoding/json"
	"net/http"

	"pets-day-registration/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/search", searchHandler(svc))
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// searchHandler exige credencial de staff: sin claims => 401, rol
// insuficiente => 403 (la UI redirige y avisa; acá es sólo la precondición).
func searchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.IsStaff() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		results, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "search failed: "+err.Error(), http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusOK, searchResponse{Results: results})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
