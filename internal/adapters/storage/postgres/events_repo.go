package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pets-day-registration/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO eventos (
			id, nome_evento, descricao, data_evento, local_evento,
			whatsapp_link, lucky_number_counter, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.Name,
		e.Description,
		toNullTime(e.Date),
		e.Location,
		e.WhatsAppLink,
		e.LuckyCounter,
		e.CreatedAt,
	)
	return err
}

func (r *EventsRepo) Active(ctx context.Context) (events.Event, error) {
	e, err := scanActiveEvent(ctx, r.db)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// el repo habla el vocabulario del dominio events
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, err
	}
	return e, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
