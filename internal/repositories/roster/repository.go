// Package roster stores saved lineups: a name plus an ordered species list
// that can be built into a fresh roster for any number of battles.
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/dino-battle/internal/repositories/roster Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
)

// Lineup is a saved team composition
type Lineup struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Species   []dino.Species `json:"species"`
	CreatedAt time.Time      `json:"created_at"`
}

// Repository defines the interface for lineup persistence
type Repository interface {
	// Create stores a new lineup
	// Returns errors.InvalidArgument for an empty ID or more than dino.Capacity species
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a lineup by ID
	// Returns errors.NotFound if it doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every lineup ordered by creation time
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a lineup
	// Returns errors.NotFound if it doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a lineup
type CreateInput struct {
	Lineup *Lineup
}

// CreateOutput defines the output for creating a lineup
type CreateOutput struct {
	Lineup *Lineup
}

// GetInput defines the input for getting a lineup
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a lineup
type GetOutput struct {
	Lineup *Lineup
}

// ListInput defines the input for listing lineups
type ListInput struct{}

// ListOutput defines the output for listing lineups
type ListOutput struct {
	Lineups []*Lineup
}

// DeleteInput defines the input for deleting a lineup
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a lineup
type DeleteOutput struct{}
