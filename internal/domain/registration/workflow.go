package registration

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

type Step string

const (
	StepTutor   Step = "tutor"
	StepPets    Step = "pets"
	StepSuccess Step = "success"
)

var (
	// ErrInvalidStep: la operación no corresponde al paso actual.
	ErrInvalidStep = errors.New("operation not allowed in current step")
	// ErrSubmitInFlight: ya hay una secuencia de persistencia en vuelo para
	// este workflow; el segundo submit se rechaza, no se encola.
	ErrSubmitInFlight = errors.New("a submit is already in flight")
)

// Workflow es la máquina de estados de una inscripción:
// tutor -> pets -> success, con vuelta pets -> tutor.
// success es terminal; no se re-entra sin empezar un workflow nuevo.
// Los drafts viven en memoria hasta el submit de mascotas, que es el único
// punto donde se toca la persistencia.
type Workflow struct {
	ID string

	mu       sync.Mutex
	step     Step
	tutor    *TutorInput
	pets     []PetInput
	inFlight bool
	result   *Result
}

func NewWorkflow() *Workflow {
	return &Workflow{
		ID:   uuid.NewString(),
		step: StepTutor,
	}
}

func (w *Workflow) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// SubmitTutor valida y guarda el draft del tutor, y avanza a pets.
// No hay llamada remota acá. Re-enviar el paso tutor (tras Back) reemplaza
// el draft completo previa validación fresca.
func (w *Workflow) SubmitTutor(in TutorInput) error {
	if errs := ValidateTutor(in); len(errs) > 0 {
		return errs
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepTutor {
		return ErrInvalidStep
	}

	t := in
	w.tutor = &t
	w.step = StepPets
	return nil
}

// Back vuelve de pets a tutor preservando ambos drafts, para pre-llenar.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepPets {
		return ErrInvalidStep
	}
	if w.inFlight {
		return ErrSubmitInFlight
	}
	w.step = StepTutor
	return nil
}

// TutorDraft devuelve el draft del tutor si existe (pre-fill de la vuelta).
func (w *Workflow) TutorDraft() (TutorInput, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.tutor == nil {
		return TutorInput{}, false
	}
	return *w.tutor, true
}

func (w *Workflow) PetsDraft() []PetInput {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]PetInput, len(w.pets))
	copy(out, w.pets)
	return out
}

// SubmitPets valida las mascotas y dispara la secuencia de persistencia,
// una sola vez por submit del usuario, sin auto-retry.
// Ante fallo remoto el workflow queda en pets con los drafts intactos y el
// usuario puede reintentar. Un submit mientras otro está en vuelo devuelve
// ErrSubmitInFlight sin tocar la persistencia.
func (w *Workflow) SubmitPets(ctx context.Context, gw Gateway, pets []PetInput) (Result, error) {
	if errs := ValidatePets(pets); len(errs) > 0 {
		return Result{}, errs
	}

	w.mu.Lock()
	if w.step != StepPets {
		w.mu.Unlock()
		return Result{}, ErrInvalidStep
	}
	if w.inFlight {
		w.mu.Unlock()
		return Result{}, ErrSubmitInFlight
	}

	w.inFlight = true
	draft := make([]PetInput, len(pets))
	copy(draft, pets)
	w.pets = draft
	tutor := *w.tutor
	w.mu.Unlock()

	res, err := gw.Register(ctx, RegisterInput{Tutor: tutor, Pets: draft})

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if err != nil {
		// queda en pets; el error se surfacea tal cual
		return Result{}, err
	}

	w.result = &res
	w.step = StepSuccess
	return res, nil
}

// Result devuelve el resultado si el workflow llegó a success.
func (w *Workflow) Result() (Result, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.result == nil {
		return Result{}, false
	}
	return *w.result, true
}
