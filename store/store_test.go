package store

import (
	"context"
	"errors"
	"testing"

	"github.com/bashafinder/backend/models"
	"github.com/bashafinder/backend/search"
)

type stubSource struct {
	props []models.Property
	err   error
	calls int
}

func (s *stubSource) FetchProperties(ctx context.Context, f search.Filters) ([]models.Property, error) {
	s.calls++
	return s.props, s.err
}

// gateSource parks each FetchProperties call on a per-division gate so a
// test can control exactly when each in-flight fetch resolves.
type gateSource struct {
	entered chan string
	gates   map[string]chan []models.Property
}

func (g *gateSource) FetchProperties(ctx context.Context, f search.Filters) ([]models.Property, error) {
	g.entered <- f.Division
	return <-g.gates[f.Division], nil
}

func twoProps() []models.Property {
	return []models.Property{
		{ID: "P1", Title: "Flat A", Price: 9000},
		{ID: "P2", Title: "Flat B", Price: 15000},
	}
}

func TestFetchReplacesCollection(t *testing.T) {
	src := &stubSource{props: twoProps()}
	s := New(src)

	got, err := s.Fetch(context.Background(), search.Filters{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 2 || s.Len() != 2 {
		t.Fatalf("collection size: got %d/%d, want 2", len(got), s.Len())
	}

	src.props = src.props[:1]
	if _, err := s.Fetch(context.Background(), search.Filters{}); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("fetch should replace wholesale, Len = %d", s.Len())
	}
}

func TestFetchErrorKeepsPreviousCollection(t *testing.T) {
	src := &stubSource{props: twoProps()}
	s := New(src)
	if _, err := s.Fetch(context.Background(), search.Filters{}); err != nil {
		t.Fatalf("seed Fetch: %v", err)
	}

	src.err = errors.New("backend down")
	if _, err := s.Fetch(context.Background(), search.Filters{}); err == nil {
		t.Fatal("expected error from failing source")
	}
	if s.Len() != 2 {
		t.Errorf("failed fetch must not touch the collection, Len = %d", s.Len())
	}
	if _, ok := s.GetByID("P1"); !ok {
		t.Error("previous property lost after failed fetch")
	}
}

func TestStaleFetchIsDiscarded(t *testing.T) {
	src := &gateSource{
		entered: make(chan string, 2),
		gates: map[string]chan []models.Property{
			"old": make(chan []models.Property),
			"new": make(chan []models.Property),
		},
	}
	s := New(src)

	type result struct {
		props []models.Property
		err   error
	}

	first := make(chan result, 1)
	go func() {
		props, err := s.Fetch(context.Background(), search.Filters{Division: "old"})
		first <- result{props, err}
	}()
	<-src.entered

	second := make(chan result, 1)
	go func() {
		props, err := s.Fetch(context.Background(), search.Filters{Division: "new"})
		second <- result{props, err}
	}()
	<-src.entered

	// The newer fetch resolves first; the older in-flight fetch resolves
	// after it and must be dropped.
	src.gates["new"] <- []models.Property{{ID: "P9", Title: "Fresh"}}
	r2 := <-second
	if r2.err != nil {
		t.Fatalf("newer fetch: %v", r2.err)
	}

	src.gates["old"] <- twoProps()
	r1 := <-first
	if r1.err != ErrStale {
		t.Fatalf("older fetch: got err %v, want ErrStale", r1.err)
	}

	if s.Len() != 1 {
		t.Errorf("stale response overwrote the collection: Len = %d", s.Len())
	}
	if _, ok := s.GetByID("P9"); !ok {
		t.Error("newest result missing from the collection")
	}
}

func TestGetByID(t *testing.T) {
	s := New(&stubSource{props: twoProps()})
	if _, err := s.Fetch(context.Background(), search.Filters{}); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	p, ok := s.GetByID("P2")
	if !ok || p.Title != "Flat B" {
		t.Errorf("GetByID(P2): got %+v, ok=%v", p, ok)
	}
	if _, ok := s.GetByID("missing"); ok {
		t.Error("GetByID should miss for unknown id")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := New(&stubSource{props: twoProps()})
	if _, err := s.Fetch(context.Background(), search.Filters{}); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	all := s.All()
	all[0].Title = "mutated"
	if p, _ := s.GetByID("P1"); p.Title == "mutated" {
		t.Error("All returned a view into store state")
	}
}
