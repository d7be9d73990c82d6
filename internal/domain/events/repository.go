package events

import "context"

type Repository interface {
	Create(ctx context.Context, e Event) error
	// Active devuelve el evento más reciente (created_at desc).
	Active(ctx context.Context) (Event, error)
}
