package search

import "context"

// Repository hace el match fuzzy: substring case-insensitive sobre nombre de
// tutor, nombre de mascota y el número como texto.
type Repository interface {
	Search(ctx context.Context, term string) ([]Result, error)
}
