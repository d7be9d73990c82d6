package staff

import "time"

// Colaborador es una cuenta del equipo de organización, habilitada para la
// búsqueda de inscriptos.
type Colaborador struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Active       bool

	CreatedAt time.Time
}
