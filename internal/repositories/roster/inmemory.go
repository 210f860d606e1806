package roster

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dino-battle/internal/errors"
	"github.com/KirkDiggler/dino-battle/internal/pkg/clock"
)

// InMemoryRepository implements Repository for single-process use
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Lineup
}

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Lineup),
	}
}

// Create stores a lineup
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateLineup(input.Lineup); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Lineup.ID]; exists {
		return nil, errors.AlreadyExistsf("lineup with ID %s already exists", input.Lineup.ID)
	}

	lineup := copyLineup(input.Lineup)
	if lineup.CreatedAt.IsZero() {
		lineup.CreatedAt = r.clock.Now()
	}
	r.store[lineup.ID] = lineup

	return &CreateOutput{Lineup: copyLineup(lineup)}, nil
}

// Get retrieves a lineup by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errLineupIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lineup, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("lineup with ID %s not found", input.ID)
	}

	return &GetOutput{Lineup: copyLineup(lineup)}, nil
}

// List returns every lineup ordered by creation time
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lineups := make([]*Lineup, 0, len(r.store))
	for _, l := range r.store {
		lineups = append(lineups, copyLineup(l))
	}

	sortLineups(lineups)
	return &ListOutput{Lineups: lineups}, nil
}

// Delete removes a lineup
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errLineupIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("lineup with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

var _ Repository = (*InMemoryRepository)(nil)
