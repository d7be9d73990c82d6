package media

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/media/pet-photos", uploadHandler(svc))
}

type uploadResponse struct {
	PhotoKey string `json:"photo_key"`
}

func uploadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// +1 para detectar "pasó el límite" sin tragar uploads gigantes
		r.Body = http.MaxBytesReader(w, r.Body, MaxPhotoSize+1)

		if err := r.ParseMultipartForm(MaxPhotoSize + 1); err != nil {
			http.Error(w, "photo must be at most 5MB", http.StatusRequestEntityTooLarge)
			return
		}

		f, _, err := r.FormFile("photo")
		if err != nil {
			http.Error(w, "photo field is required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			http.Error(w, "could not read photo", http.StatusBadRequest)
			return
		}

		key, err := svc.SavePetPhoto(r.Context(), data)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyPhoto), errors.Is(err, ErrUnsupportedType):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrPhotoTooLarge):
				http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			default:
				http.Error(w, "could not store photo", http.StatusBadGateway)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(uploadResponse{PhotoKey: key})
	}
}
