package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pets-day-registration/internal/domain/events"
	"pets-day-registration/internal/domain/registration"
	"pets-day-registration/internal/domain/search"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type tutorRow struct {
	ID                      string
	Name                    string
	Email                   string
	Phone                   string
	PasswordHash            string
	LGPDConsent             bool
	SocialMedia             string
	ImagePublicationConsent bool
}

type petRow struct {
	ID       string
	TutorID  string
	EventID  string
	Name     string
	Species  string
	Breed    string
	PhotoKey string
	Number   int64
}

// Gateway implementa registration.Gateway y search.Repository en memoria.
// Sirve para dev y tests; la serialización del contador la da el EventRepo.
type Gateway struct {
	events *EventRepo

	mu     sync.Mutex
	tutors map[string]tutorRow // key: email normalizado
	pets   map[string]*petRow  // key: pet id
	order  []string            // ids de pets en orden de inserción
}

func NewGateway(eventRepo *EventRepo) *Gateway {
	return &Gateway{
		events: eventRepo,
		tutors: make(map[string]tutorRow),
		pets:   make(map[string]*petRow),
	}
}

func (g *Gateway) ActiveEvent(ctx context.Context) (events.Event, error) {
	e, err := g.events.Active(ctx)
	if err != nil {
		return events.Event{}, registration.ErrEventNotFound
	}
	return e, nil
}

func (g *Gateway) Register(ctx context.Context, in registration.RegisterInput) (registration.Result, error) {
	event, err := g.ActiveEvent(ctx)
	if err != nil {
		return registration.Result{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(in.Tutor.Email))
	if _, exists := g.tutors[email]; exists {
		return registration.Result{}, &registration.TutorInsertError{
			Email: email,
			Err:   errors.New("email already registered"),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Tutor.Password), bcrypt.DefaultCost)
	if err != nil {
		return registration.Result{}, &registration.TutorInsertError{Email: email, Err: err}
	}

	tutor := tutorRow{
		ID:                      uuid.NewString(),
		Name:                    strings.TrimSpace(in.Tutor.FullName),
		Email:                   email,
		Phone:                   strings.TrimSpace(in.Tutor.Phone),
		PasswordHash:            string(hash),
		LGPDConsent:             in.Tutor.LGPDConsent,
		SocialMedia:             strings.TrimSpace(in.Tutor.SocialMedia),
		ImagePublicationConsent: in.Tutor.ImagePublicationConsent,
	}
	g.tutors[email] = tutor

	res := registration.Result{
		TutorID:      tutor.ID,
		TutorName:    tutor.Name,
		EventID:      event.ID,
		EventName:    event.Name,
		WhatsAppLink: event.WhatsAppLink,
	}

	for _, p := range in.Pets {
		row := &petRow{
			ID:       uuid.NewString(),
			TutorID:  tutor.ID,
			EventID:  event.ID,
			Name:     strings.TrimSpace(p.Name),
			Species:  string(p.Species),
			Breed:    strings.TrimSpace(p.Breed),
			PhotoKey: p.PhotoKey,
		}

		n, err := g.events.IncrementCounter(event.ID)
		if err != nil {
			return registration.Result{}, &registration.LuckyNumberGenerationError{PetName: row.Name, Err: err}
		}
		row.Number = n

		g.pets[row.ID] = row
		g.order = append(g.order, row.ID)

		res.Entries = append(res.Entries, registration.ResultEntry{
			PetID:       row.ID,
			PetName:     row.Name,
			LuckyNumber: n,
		})
	}

	return res, nil
}

// GenerateLuckyNumber es idempotente: si la mascota ya tiene ticket para ese
// evento, devuelve el existente sin emitir uno nuevo.
func (g *Gateway) GenerateLuckyNumber(ctx context.Context, petID, eventID string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	row, ok := g.pets[petID]
	if !ok {
		return 0, fmt.Errorf("pet %s not found", petID)
	}
	if row.EventID != eventID {
		return 0, fmt.Errorf("pet %s is not registered for event %s", petID, eventID)
	}
	if row.Number != 0 {
		return row.Number, nil
	}

	n, err := g.events.IncrementCounter(eventID)
	if err != nil {
		return 0, err
	}
	row.Number = n
	return n, nil
}

// Search hace el match fuzzy sobre los datos en memoria: substring
// case-insensitive en nombre de tutor, nombre de mascota y el ticket
// zero-padded.
func (g *Gateway) Search(ctx context.Context, term string) ([]search.Result, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []search.Result{}, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	tutorsByID := make(map[string]tutorRow, len(g.tutors))
	for _, t := range g.tutors {
		tutorsByID[t.ID] = t
	}

	out := make([]search.Result, 0)
	for _, id := range g.order {
		p := g.pets[id]
		t, ok := tutorsByID[p.TutorID]
		if !ok {
			continue
		}

		ticket := registration.FormatLuckyNumber(p.Number)
		if !strings.Contains(strings.ToLower(t.Name), term) &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(ticket, term) {
			continue
		}

		out = append(out, search.Result{
			TutorID:                 t.ID,
			TutorName:               t.Name,
			TutorEmail:              t.Email,
			TutorPhone:              t.Phone,
			PetID:                   p.ID,
			PetName:                 p.Name,
			Species:                 p.Species,
			Breed:                   p.Breed,
			LuckyNumber:             p.Number,
			LGPDConsent:             t.LGPDConsent,
			ImagePublicationConsent: t.ImagePublicationConsent,
		})
	}

	return out, nil
}
