// Package supabase es el gateway legacy: habla PostgREST contra la base
// hosteada original, igual que lo hacía el cliente web. A diferencia del
// adapter Postgres no hay transacción posible: la secuencia es secuencial y
// un fallo a mitad deja las filas ya insertadas (los errores tipados por
// paso dejan claro hasta dónde llegó).
package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pets-day-registration/internal/domain/events"
	"pets-day-registration/internal/domain/registration"
	"pets-day-registration/internal/domain/search"
	"pets-day-registration/internal/platform/httpclient"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	BaseURL    string
	ServiceKey string
	Timeout    time.Duration
}

type Gateway struct {
	http *httpclient.Client
}

func New(cfg Config) (*Gateway, error) {
	if strings.TrimSpace(cfg.ServiceKey) == "" {
		return nil, errors.New("supabase: service key required")
	}

	c, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	c.DefaultHeaders = map[string]string{
		"apikey":        cfg.ServiceKey,
		"Authorization": "Bearer " + cfg.ServiceKey,
	}

	return &Gateway{http: c}, nil
}

// NewWithClient permite inyectar el httpclient (tests con RoundTripper fake).
func NewWithClient(c *httpclient.Client) *Gateway {
	return &Gateway{http: c}
}

type eventRow struct {
	ID                 string     `json:"id"`
	NomeEvento         string     `json:"nome_evento"`
	Descricao          string     `json:"descricao"`
	DataEvento         *time.Time `json:"data_evento"`
	LocalEvento        string     `json:"local_evento"`
	WhatsappLink       string     `json:"whatsapp_link"`
	LuckyNumberCounter int64      `json:"lucky_number_counter"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (g *Gateway) ActiveEvent(ctx context.Context) (events.Event, error) {
	var rows []eventRow
	err := g.http.DoJSON(ctx, http.MethodGet,
		"/rest/v1/eventos?select=*&order=created_at.desc&limit=1", nil, nil, &rows)
	if err != nil {
		return events.Event{}, fmt.Errorf("supabase: fetch eventos: %w", err)
	}
	if len(rows) == 0 {
		return events.Event{}, registration.ErrEventNotFound
	}

	r := rows[0]
	return events.Event{
		ID:           r.ID,
		Name:         r.NomeEvento,
		Description:  r.Descricao,
		Date:         r.DataEvento,
		Location:     r.LocalEvento,
		WhatsAppLink: r.WhatsappLink,
		LuckyCounter: r.LuckyNumberCounter,
		CreatedAt:    r.CreatedAt,
	}, nil
}

type tutorInsert struct {
	Nome                    string `json:"nome"`
	Email                   string `json:"email"`
	Telefone                string `json:"telefone"`
	SenhaHash               string `json:"senha_hash"`
	LGPDConsent             bool   `json:"lgpd_consent"`
	SocialMedia             string `json:"social_media"`
	ImagePublicationConsent bool   `json:"image_publication_consent"`
}

type petInsert struct {
	IDTutor  string `json:"id_tutor"`
	IDEvento string `json:"id_evento"`
	NomePet  string `json:"nome_pet"`
	Especie  string `json:"especie"`
	Raca     string `json:"raca"`
	PhotoKey string `json:"photo_key"`
}

type insertedRow struct {
	ID string `json:"id"`
}

// returnRepresentation pide a PostgREST que devuelva la fila insertada.
var returnRepresentation = map[string]string{"Prefer": "return=representation"}

func (g *Gateway) Register(ctx context.Context, in registration.RegisterInput) (registration.Result, error) {
	event, err := g.ActiveEvent(ctx)
	if err != nil {
		return registration.Result{}, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Tutor.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Tutor.Password), bcrypt.DefaultCost)
	if err != nil {
		return registration.Result{}, &registration.TutorInsertError{Email: email, Err: err}
	}

	var tutorRows []insertedRow
	err = g.http.DoJSON(ctx, http.MethodPost, "/rest/v1/tutores", returnRepresentation,
		tutorInsert{
			Nome:                    strings.TrimSpace(in.Tutor.FullName),
			Email:                   email,
			Telefone:                strings.TrimSpace(in.Tutor.Phone),
			SenhaHash:               string(hash),
			LGPDConsent:             in.Tutor.LGPDConsent,
			SocialMedia:             strings.TrimSpace(in.Tutor.SocialMedia),
			ImagePublicationConsent: in.Tutor.ImagePublicationConsent,
		}, &tutorRows)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusConflict {
			return registration.Result{}, &registration.TutorInsertError{
				Email: email,
				Err:   errors.New("email already registered"),
			}
		}
		return registration.Result{}, &registration.TutorInsertError{Email: email, Err: err}
	}
	if len(tutorRows) == 0 {
		return registration.Result{}, &registration.TutorInsertError{
			Email: email,
			Err:   errors.New("insert returned no row"),
		}
	}

	res := registration.Result{
		TutorID:      tutorRows[0].ID,
		TutorName:    strings.TrimSpace(in.Tutor.FullName),
		EventID:      event.ID,
		EventName:    event.Name,
		WhatsAppLink: event.WhatsAppLink,
	}

	for _, p := range in.Pets {
		name := strings.TrimSpace(p.Name)

		var petRows []insertedRow
		err := g.http.DoJSON(ctx, http.MethodPost, "/rest/v1/pets", returnRepresentation,
			petInsert{
				IDTutor:  res.TutorID,
				IDEvento: event.ID,
				NomePet:  name,
				Especie:  string(p.Species),
				Raca:     strings.TrimSpace(p.Breed),
				PhotoKey: p.PhotoKey,
			}, &petRows)
		if err != nil {
			return registration.Result{}, &registration.PetInsertError{PetName: name, Err: err}
		}
		if len(petRows) == 0 {
			return registration.Result{}, &registration.PetInsertError{
				PetName: name,
				Err:     errors.New("insert returned no row"),
			}
		}

		n, err := g.GenerateLuckyNumber(ctx, petRows[0].ID, event.ID)
		if err != nil {
			return registration.Result{}, &registration.LuckyNumberGenerationError{PetName: name, Err: err}
		}

		res.Entries = append(res.Entries, registration.ResultEntry{
			PetID:       petRows[0].ID,
			PetName:     name,
			LuckyNumber: n,
		})
	}

	return res, nil
}

func (g *Gateway) GenerateLuckyNumber(ctx context.Context, petID, eventID string) (int64, error) {
	var n int64
	err := g.http.DoJSON(ctx, http.MethodPost, "/rest/v1/rpc/gerar_numero_sorte", nil,
		map[string]string{"p_pet": petID, "p_evento": eventID}, &n)
	if err != nil {
		return 0, fmt.Errorf("supabase: gerar_numero_sorte: %w", err)
	}
	return n, nil
}

type searchRow struct {
	TutorID     string `json:"tutor_id"`
	TutorNome   string `json:"tutor_nome"`
	PetID       string `json:"pet_id"`
	PetNome     string `json:"pet_nome"`
	Especie     string `json:"especie"`
	Raca        string `json:"raca"`
	NumeroSorte int64  `json:"numero_sorte"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
}

// Search delega en el RPC de búsqueda fuzzy del lado del servidor.
func (g *Gateway) Search(ctx context.Context, term string) ([]search.Result, error) {
	var rows []searchRow
	err := g.http.DoJSON(ctx, http.MethodPost, "/rest/v1/rpc/buscar_usuarios", nil,
		map[string]string{"search_term": term}, &rows)
	if err != nil {
		return nil, fmt.Errorf("supabase: buscar_usuarios: %w", err)
	}

	out := make([]search.Result, 0, len(rows))
	for _, r := range rows {
		out = append(out, search.Result{
			TutorID:     r.TutorID,
			TutorName:   r.TutorNome,
			TutorEmail:  r.Email,
			TutorPhone:  r.Telefone,
			PetID:       r.PetID,
			PetName:     r.PetNome,
			Species:     r.Especie,
			Breed:       r.Raca,
			LuckyNumber: r.NumeroSorte,
		})
	}
	return out, nil
}
