package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pets-day-registration/internal/domain/staff"
)

type StaffRepo struct {
	db *sql.DB
}

func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

func (r *StaffRepo) Create(ctx context.Context, c staff.Colaborador) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO colaboradores (id, nome, email, senha_hash, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		c.ID,
		c.Name,
		strings.ToLower(strings.TrimSpace(c.Email)),
		c.PasswordHash,
		c.Active,
		c.CreatedAt,
	)
	return err
}

func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (staff.Colaborador, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome, email, senha_hash, status, created_at
		FROM colaboradores
		WHERE email = $1
	`, strings.ToLower(strings.TrimSpace(email)))

	var c staff.Colaborador
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.PasswordHash,
		&c.Active,
		&c.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return staff.Colaborador{}, ErrNotFound
		}
		return staff.Colaborador{}, err
	}
	return c, nil
}
