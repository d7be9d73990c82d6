package search

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultCacheTTL = 30 * time.Second

type Service struct {
	repo  Repository
	cache *gocache.Cache
	ttl   time.Duration
}

// NewService arma el servicio de búsqueda. ttl <= 0 usa el default.
// El cache absorbe los repeats del tipeo (la UI dispara por cambio,
// con debounce del lado del cliente).
func NewService(repo Repository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		repo:  repo,
		cache: gocache.New(ttl, 5*time.Minute),
		ttl:   ttl,
	}
}

// Search: término vacío => resultado vacío, sin llamada remota.
func (s *Service) Search(ctx context.Context, term string) ([]Result, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Result{}, nil
	}

	key := strings.ToLower(term)
	if v, ok := s.cache.Get(key); ok {
		if cached, ok := v.([]Result); ok {
			return cached, nil
		}
	}

	out, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Result{}
	}

	s.cache.Set(key, out, s.ttl)
	return out, nil
}
