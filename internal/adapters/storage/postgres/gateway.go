package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pets-day-registration/internal/domain/events"
	"pets-day-registration/internal/domain/registration"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const pgUniqueViolation = "23505"

// Gateway implementa registration.Gateway sobre Postgres.
// Register corre la secuencia completa dentro de una única transacción:
// ante cualquier fallo no queda ni tutor ni mascotas a medias.
type Gateway struct {
	db *sql.DB
}

func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) ActiveEvent(ctx context.Context) (events.Event, error) {
	e, err := scanActiveEvent(ctx, g.db)
	if errors.Is(err, ErrNotFound) {
		return events.Event{}, registration.ErrEventNotFound
	}
	return e, err
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scanActiveEvent(ctx context.Context, q querier) (events.Event, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, nome_evento, descricao, data_evento, local_evento,
		       whatsapp_link, lucky_number_counter, created_at
		FROM eventos
		ORDER BY created_at DESC
		LIMIT 1
	`)

	var e events.Event
	var date sql.NullTime
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&date,
		&e.Location,
		&e.WhatsAppLink,
		&e.LuckyCounter,
		&e.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, ErrNotFound
		}
		return events.Event{}, err
	}

	if date.Valid {
		t := date.Time
		e.Date = &t
	}
	return e, nil
}

func (g *Gateway) Register(ctx context.Context, in registration.RegisterInput) (registration.Result, error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return registration.Result{}, err
	}
	defer func() { _ = tx.Rollback() }()

	event, err := scanActiveEvent(ctx, tx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return registration.Result{}, registration.ErrEventNotFound
		}
		return registration.Result{}, err
	}

	tutorID, err := insertTutor(ctx, tx, in.Tutor)
	if err != nil {
		return registration.Result{}, err
	}

	res := registration.Result{
		TutorID:      tutorID,
		TutorName:    strings.TrimSpace(in.Tutor.FullName),
		EventID:      event.ID,
		EventName:    event.Name,
		WhatsAppLink: event.WhatsAppLink,
	}

	// En orden de input: insertar fila + emitir número, serial por mascota.
	for _, p := range in.Pets {
		petID, err := insertPet(ctx, tx, tutorID, event.ID, p)
		if err != nil {
			return registration.Result{}, err
		}

		n, err := generateLuckyNumber(ctx, tx, petID, event.ID)
		if err != nil {
			return registration.Result{}, &registration.LuckyNumberGenerationError{
				PetName: strings.TrimSpace(p.Name),
				Err:     err,
			}
		}

		res.Entries = append(res.Entries, registration.ResultEntry{
			PetID:       petID,
			PetName:     strings.TrimSpace(p.Name),
			LuckyNumber: n,
		})
	}

	if err := tx.Commit(); err != nil {
		return registration.Result{}, err
	}
	return res, nil
}

func (g *Gateway) GenerateLuckyNumber(ctx context.Context, petID, eventID string) (int64, error) {
	return generateLuckyNumber(ctx, g.db, petID, eventID)
}

func insertTutor(ctx context.Context, tx *sql.Tx, t registration.TutorInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(t.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(t.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", &registration.TutorInsertError{Email: email, Err: err}
	}

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO tutores (
			id, nome, email, telefone, senha_hash,
			lgpd_consent, social_media, image_publication_consent, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		id,
		strings.TrimSpace(t.FullName),
		email,
		strings.TrimSpace(t.Phone),
		string(hash),
		t.LGPDConsent,
		strings.TrimSpace(t.SocialMedia),
		t.ImagePublicationConsent,
		time.Now(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", &registration.TutorInsertError{
				Email: email,
				Err:   errors.New("email already registered"),
			}
		}
		return "", &registration.TutorInsertError{Email: email, Err: err}
	}
	return id, nil
}

func insertPet(ctx context.Context, tx *sql.Tx, tutorID, eventID string, p registration.PetInput) (string, error) {
	id := uuid.NewString()
	_, err := tx.ExecContext(ctx, `
		INSERT INTO pets (
			id, id_tutor, id_evento, nome_pet, especie, raca, photo_key, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		id,
		tutorID,
		eventID,
		strings.TrimSpace(p.Name),
		string(p.Species),
		strings.TrimSpace(p.Breed),
		p.PhotoKey,
		time.Now(),
	)
	if err != nil {
		return "", &registration.PetInsertError{
			PetName: strings.TrimSpace(p.Name),
			Err:     err,
		}
	}
	return id, nil
}

func generateLuckyNumber(ctx context.Context, q querier, petID, eventID string) (int64, error) {
	var n int64
	if err := q.QueryRowContext(ctx, `SELECT gerar_numero_sorte($1, $2)`, petID, eventID).Scan(&n); err != nil {
		return 0, fmt.Errorf("gerar_numero_sorte: %w", err)
	}
	return n, nil
}
