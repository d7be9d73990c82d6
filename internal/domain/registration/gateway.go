package registration

import (
	"context"
	"errors"
	"fmt"

	"pets-day-registration/internal/domain/events"
)

// ErrEventNotFound: no hay evento activo contra el cual inscribir.
var ErrEventNotFound = errors.New("no active event")

// TutorInsertError: falló el alta del tutor (típicamente email duplicado).
// Aborta la secuencia entera; no se insertan mascotas.
type TutorInsertError struct {
	Email string
	Err   error
}

func (e *TutorInsertError) Error() string {
	return fmt.Sprintf("tutor insert failed for %s: %v", e.Email, e.Err)
}

func (e *TutorInsertError) Unwrap() error { return e.Err }

// PetInsertError: falló el alta de una mascota puntual.
type PetInsertError struct {
	PetName string
	Err     error
}

func (e *PetInsertError) Error() string {
	return fmt.Sprintf("pet insert failed for %q: %v", e.PetName, e.Err)
}

func (e *PetInsertError) Unwrap() error { return e.Err }

// LuckyNumberGenerationError: la mascota quedó insertada pero el número
// de la sorte no se pudo emitir.
type LuckyNumberGenerationError struct {
	PetName string
	Err     error
}

func (e *LuckyNumberGenerationError) Error() string {
	return fmt.Sprintf("lucky number generation failed for %q: %v", e.PetName, e.Err)
}

func (e *LuckyNumberGenerationError) Unwrap() error { return e.Err }

type RegisterInput struct {
	Tutor TutorInput
	Pets  []PetInput
}

// ResultEntry es un par (mascota, número) en el orden de input.
type ResultEntry struct {
	PetID       string
	PetName     string
	LuckyNumber int64
}

type Result struct {
	TutorID   string
	TutorName string

	Entries []ResultEntry

	EventID      string
	EventName    string
	WhatsAppLink string
}

// Gateway es el puerto de persistencia que consume el workflow.
// Register ejecuta la secuencia ordenada del submit de mascotas:
// resolver evento activo, insertar tutor, y por cada mascota en orden de
// input insertar fila + emitir número. Los números vuelven en orden de input.
//
// La emisión de números es autoridad exclusiva del storage: exactly-once por
// (mascota, evento), sin colisiones bajo inscripciones concurrentes, e
// idempotente ante llamadas repetidas (devuelve el ticket existente).
type Gateway interface {
	ActiveEvent(ctx context.Context) (events.Event, error)
	Register(ctx context.Context, in RegisterInput) (Result, error)
	GenerateLuckyNumber(ctx context.Context, petID, eventID string) (int64, error)
}

// FormatLuckyNumber arma el string de display, ancho fijo con ceros.
func FormatLuckyNumber(n int64) string {
	return fmt.Sprintf("%06d", n)
}
