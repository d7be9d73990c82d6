package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pets-day-registration/internal/domain/staff"
)

var ErrNotFound = errors.New("not found")

type StaffRepo struct {
	mu      sync.RWMutex
	byEmail map[string]staff.Colaborador
}

func NewStaffRepo() *StaffRepo {
	return &StaffRepo{byEmail: make(map[string]staff.Colaborador)}
}

func (r *StaffRepo) Create(ctx context.Context, c staff.Colaborador) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(c.Email))
	if email == "" {
		return errors.New("email required")
	}
	if _, exists := r.byEmail[email]; exists {
		return errors.New("email already registered")
	}
	r.byEmail[email] = c
	return nil
}

func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (staff.Colaborador, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return staff.Colaborador{}, ErrNotFound
	}
	return c, nil
}
