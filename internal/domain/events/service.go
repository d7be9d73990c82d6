package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("event not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Description  string
	Date         *time.Time
	Location     string
	WhatsAppLink string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Event, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Event{}, ErrInvalidInput
	}

	e := Event{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Date:         in.Date,
		Location:     strings.TrimSpace(in.Location),
		WhatsAppLink: strings.TrimSpace(in.WhatsAppLink),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) Active(ctx context.Context) (Event, error) {
	return s.repo.Active(ctx)
}
