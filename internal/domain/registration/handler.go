package registration

import (
	"encoding/json"
	"errors"
	"net/http"

	"pets-day-registration/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, store *Store, gw Gateway, log logger.Logger) {
	r.Route("/registrations", func(rr chi.Router) {
		rr.Post("/", startHandler(store))
		rr.Get("/{workflowID}", getHandler(store))
		rr.Post("/{workflowID}/tutor", tutorStepHandler(store))
		rr.Post("/{workflowID}/back", backHandler(store))
		rr.Post("/{workflowID}/pets", petsStepHandler(store, gw, log))
	})
}

type tutorRequest struct {
	FullName                string `json:"full_name"`
	Email                   string `json:"email"`
	Phone                   string `json:"phone"`
	Password                string `json:"password"`
	LGPDConsent             bool   `json:"lgpd_consent"`
	SocialMedia             string `json:"social_media"`
	ImagePublicationConsent bool   `json:"image_publication_consent"`
}

type petRequest struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	PhotoKey string `json:"photo_key"`
}

type petsRequest struct {
	Pets []petRequest `json:"pets"`
}

type workflowResponse struct {
	ID   string `json:"id"`
	Step string `json:"step"`

	// Sólo en success:
	TutorName    string          `json:"tutor_name,omitempty"`
	Entries      []entryResponse `json:"entries,omitempty"`
	WhatsAppLink string          `json:"whatsapp_link,omitempty"`
	EventName    string          `json:"event_name,omitempty"`
}

type entryResponse struct {
	PetName     string `json:"pet_name"`
	LuckyNumber int64  `json:"lucky_number"`
	Display     string `json:"display"`
}

type validationResponse struct {
	Errors ValidationErrors `json:"errors"`
}

func startHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wf := store.Create()
		writeJSON(w, http.StatusCreated, workflowResponse{ID: wf.ID, Step: string(wf.Step())})
	}
}

func getHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wf, err := store.Get(chi.URLParam(r, "workflowID"))
		if err != nil {
			http.Error(w, "workflow not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toWorkflowResponse(wf))
	}
}

func tutorStepHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wf, err := store.Get(chi.URLParam(r, "workflowID"))
		if err != nil {
			http.Error(w, "workflow not found", http.StatusNotFound)
			return
		}

		var req tutorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := TutorInput{
			FullName:                req.FullName,
			Email:                   req.Email,
			Phone:                   FormatPhone(req.Phone),
			Password:                req.Password,
			LGPDConsent:             req.LGPDConsent,
			SocialMedia:             req.SocialMedia,
			ImagePublicationConsent: req.ImagePublicationConsent,
		}

		if err := wf.SubmitTutor(in); err != nil {
			writeStepError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, workflowResponse{ID: wf.ID, Step: string(wf.Step())})
	}
}

func backHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wf, err := store.Get(chi.URLParam(r, "workflowID"))
		if err != nil {
			http.Error(w, "workflow not found", http.StatusNotFound)
			return
		}
		if err := wf.Back(); err != nil {
			writeStepError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toWorkflowResponse(wf))
	}
}

func petsStepHandler(store *Store, gw Gateway, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wf, err := store.Get(chi.URLParam(r, "workflowID"))
		if err != nil {
			http.Error(w, "workflow not found", http.StatusNotFound)
			return
		}

		var req petsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		pets := make([]PetInput, 0, len(req.Pets))
		for _, p := range req.Pets {
			pets = append(pets, PetInput{
				Name:     p.Name,
				Species:  Species(p.Species),
				Breed:    p.Breed,
				PhotoKey: p.PhotoKey,
			})
		}

		res, err := wf.SubmitPets(r.Context(), gw, pets)
		if err != nil {
			log.Warn("pets submit failed", map[string]any{
				"workflow_id": wf.ID,
				"error":       err.Error(),
			})
			writeStepError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, successResponse(wf.ID, res))
	}
}

// writeStepError mapea la taxonomía de errores del workflow/gateway a HTTP.
// Los errores remotos son recuperables con retry: el workflow no cambió de
// estado, el mensaje se muestra tal cual.
func writeStepError(w http.ResponseWriter, err error) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, validationResponse{Errors: verrs})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidStep):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrSubmitInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrEventNotFound):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		var tie *TutorInsertError
		if errors.As(err, &tie) {
			http.Error(w, "could not register tutor: "+tie.Err.Error(), http.StatusConflict)
			return
		}
		var pie *PetInsertError
		var lge *LuckyNumberGenerationError
		if errors.As(err, &pie) || errors.As(err, &lge) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toWorkflowResponse(wf *Workflow) workflowResponse {
	if res, ok := wf.Result(); ok {
		return successResponse(wf.ID, res)
	}
	return workflowResponse{ID: wf.ID, Step: string(wf.Step())}
}

func successResponse(id string, res Result) workflowResponse {
	entries := make([]entryResponse, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, entryResponse{
			PetName:     e.PetName,
			LuckyNumber: e.LuckyNumber,
			Display:     FormatLuckyNumber(e.LuckyNumber),
		})
	}
	return workflowResponse{
		ID:           id,
		Step:         string(StepSuccess),
		TutorName:    res.TutorName,
		Entries:      entries,
		WhatsAppLink: res.WhatsAppLink,
		EventName:    res.EventName,
	}
}

// writeJSON está duplicado a propósito en handlers de distintos módulos;
// extraer un helper común recién si se repite en más lugares.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
