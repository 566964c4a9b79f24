// Package store holds the session property collection: the one in-memory
// list the browse surfaces read from. A fetch replaces the collection
// wholesale; there is no merge or patch path.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/bashafinder/backend/models"
	"github.com/bashafinder/backend/search"
)

// ErrStale is returned when a fetch resolves after a newer fetch was
// issued. The result is discarded so a slow response can never overwrite
// a more recent one.
var ErrStale = errors.New("store: fetch superseded by a newer request")

// Source produces the property set for a filter. The mongo-backed source
// lives in this package; tests plug in fakes.
type Source interface {
	FetchProperties(ctx context.Context, f search.Filters) ([]models.Property, error)
}

type Store struct {
	source Source

	mu    sync.Mutex
	props []models.Property
	gen   uint64
}

func New(source Source) *Store {
	return &Store{source: source}
}

// Fetch replaces the collection with the source result for f. On error
// the previous collection stays intact and the error is returned. Each
// call bumps a generation counter; a call that finds itself superseded on
// completion drops its result and returns ErrStale.
func (s *Store) Fetch(ctx context.Context, f search.Filters) ([]models.Property, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	props, err := s.source.FetchProperties(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, ErrStale
	}
	if err != nil {
		return nil, err
	}
	s.props = make([]models.Property, len(props))
	copy(s.props, props)
	return s.copyAll(), nil
}

// All returns a copy of the current collection in fetch order.
func (s *Store) All() []models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyAll()
}

func (s *Store) copyAll() []models.Property {
	out := make([]models.Property, len(s.props))
	copy(out, s.props)
	return out
}

// GetByID scans the collection for a property. The collection is small,
// a linear pass is fine.
func (s *Store) GetByID(id string) (models.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.props {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.props)
}
