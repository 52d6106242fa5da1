// Package repository contains the storage collaborators consumed by the
// core: in-memory implementations of the domain repository interfaces and a
// Redis-backed inventory counter store. Durable backends can be substituted
// without touching the core.
package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
)

type InMemoryMovieRepository struct {
	mu     sync.RWMutex
	movies map[int]*domain.Movie
}

func NewInMemoryMovieRepository(movies ...*domain.Movie) *InMemoryMovieRepository {
	r := &InMemoryMovieRepository{movies: make(map[int]*domain.Movie, len(movies))}
	for _, m := range movies {
		movie := *m
		r.movies[movie.ID] = &movie
	}

	return r
}

// SeedMovies returns the demo catalog loaded at startup.
func SeedMovies() []*domain.Movie {
	return []*domain.Movie{
		{ID: 1, Title: "Avengers: Endgame", Genre: "Action", Format: "IMAX", Duration: 181},
		{ID: 2, Title: "Avatar: The Way of Water", Genre: "Sci-Fi", Format: "3D", Duration: 192},
		{ID: 3, Title: "The Batman", Genre: "Action", Format: "Standard", Duration: 176},
	}
}

func (r *InMemoryMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrMovieNotFound, id)
	}

	m := *movie

	return &m, nil
}

func (r *InMemoryMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*domain.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		m := *movie
		movies = append(movies, &m)
	}

	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })

	return movies, nil
}
