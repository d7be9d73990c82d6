package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/event", activeEventHandler(svc))
}

type eventResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	Location     string     `json:"location,omitempty"`
	WhatsAppLink string     `json:"whatsapp_link,omitempty"`
}

func activeEventHandler(svc *Service) http.HandlerFunc {
	// Metadata pública del evento vigente (el contador no se expone).
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.Active(r.Context())
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "no active event", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, eventResponse{
			ID:           e.ID,
			Name:         e.Name,
			Description:  e.Description,
			Date:         e.Date,
			Location:     e.Location,
			WhatsAppLink: e.WhatsAppLink,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
