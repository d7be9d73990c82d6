package registration

import (
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var ErrWorkflowNotFound = errors.New("workflow not found")

const DefaultWorkflowTTL = 30 * time.Minute

// Store guarda instancias de workflow por id con TTL: drafts abandonados
// expiran solos. El TTL se renueva en cada acceso.
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultWorkflowTTL
	}
	return &Store{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *Store) Create() *Workflow {
	w := NewWorkflow()
	s.cache.Set(w.ID, w, s.ttl)
	return w
}

func (s *Store) Get(id string) (*Workflow, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrWorkflowNotFound
	}
	w, ok := v.(*Workflow)
	if !ok {
		return nil, ErrWorkflowNotFound
	}
	// refresca el TTL mientras el usuario sigue navegando los pasos
	s.cache.Set(id, w, s.ttl)
	return w, nil
}
