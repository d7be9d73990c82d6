package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pets-day-registration/internal/domain/events"
	"pets-day-registration/internal/domain/registration"
	"pets-day-registration/internal/domain/staff"
)

// EventsRepo expone el Gateway como events.Repository.
type EventsRepo struct {
	g *Gateway
}

func (g *Gateway) Events() *EventsRepo {
	return &EventsRepo{g: g}
}

func (r *EventsRepo) Active(ctx context.Context) (events.Event, error) {
	e, err := r.g.ActiveEvent(ctx)
	if errors.Is(err, registration.ErrEventNotFound) {
		return events.Event{}, events.ErrNotFound
	}
	return e, err
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	body := map[string]any{
		"id":                   e.ID,
		"nome_evento":          e.Name,
		"descricao":            e.Description,
		"local_evento":         e.Location,
		"whatsapp_link":        e.WhatsAppLink,
		"lucky_number_counter": e.LuckyCounter,
		"created_at":           e.CreatedAt.Format(time.RFC3339),
	}
	if e.Date != nil {
		body["data_evento"] = e.Date.Format(time.RFC3339)
	}

	if err := r.g.http.DoJSON(ctx, http.MethodPost, "/rest/v1/eventos", nil, body, nil); err != nil {
		return fmt.Errorf("supabase: insert evento: %w", err)
	}
	return nil
}

// StaffRepo expone el Gateway como staff.Repository.
type StaffRepo struct {
	g *Gateway
}

func (g *Gateway) Staff() *StaffRepo {
	return &StaffRepo{g: g}
}

type colaboradorRow struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	SenhaHash string    `json:"senha_hash"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (staff.Colaborador, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var rows []colaboradorRow
	path := "/rest/v1/colaboradores?select=*&email=eq." + url.QueryEscape(email)
	if err := r.g.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &rows); err != nil {
		return staff.Colaborador{}, fmt.Errorf("supabase: fetch colaborador: %w", err)
	}
	if len(rows) == 0 {
		return staff.Colaborador{}, errors.New("not found")
	}

	row := rows[0]
	return staff.Colaborador{
		ID:           row.ID,
		Name:         row.Nome,
		Email:        row.Email,
		PasswordHash: row.SenhaHash,
		Active:       row.Status,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (r *StaffRepo) Create(ctx context.Context, c staff.Colaborador) error {
	body := map[string]any{
		"id":         c.ID,
		"nome":       c.Name,
		"email":      strings.ToLower(strings.TrimSpace(c.Email)),
		"senha_hash": c.PasswordHash,
		"status":     c.Active,
		"created_at": c.CreatedAt.Format(time.RFC3339),
	}
	if err := r.g.http.DoJSON(ctx, http.MethodPost, "/rest/v1/colaboradores", nil, body, nil); err != nil {
		return fmt.Errorf("supabase: insert colaborador: %w", err)
	}
	return nil
}
