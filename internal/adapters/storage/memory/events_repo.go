package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pets-day-registration/internal/domain/events"
)

// EventRepo guarda eventos en memoria. Es también la autoridad del contador
// de números: IncrementCounter serializa bajo el mutex del repo, igual que
// la función de base lo hace con el update atómico.
type EventRepo struct {
	mu   sync.RWMutex
	byID map[string]events.Event
}

func NewEventRepo() *EventRepo {
	return &EventRepo{byID: make(map[string]events.Event)}
}

func (r *EventRepo) Create(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *EventRepo) Active(ctx context.Context) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest events.Event
	found := false
	for _, e := range r.byID {
		if !found || e.CreatedAt.After(latest.CreatedAt) {
			latest = e
			found = true
		}
	}
	if !found {
		return events.Event{}, events.ErrNotFound
	}
	return latest, nil
}

// IncrementCounter emite el siguiente número del evento.
func (r *EventRepo) IncrementCounter(eventID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[eventID]
	if !ok {
		return 0, events.ErrNotFound
	}
	e.LuckyCounter++
	r.byID[eventID] = e
	return e.LuckyCounter, nil
}
