package staff

import "context"

type Repository interface {
	Create(ctx context.Context, c Colaborador) error
	GetByEmail(ctx context.Context, email string) (Colaborador, error)
}
