package definitions

//go:generate mockgen -destination=mock/mock.go -package=mockdefinitions -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/creaturescripts/internal/manifest"
)

// Repository stores creature event definitions
type Repository interface {
	// Create stores a new definition, assigning an ID when it has none
	Create(ctx context.Context, definition *manifest.Definition) error

	// Get retrieves a definition by ID
	Get(ctx context.Context, id string) (*manifest.Definition, error)

	// List returns every definition in creation order
	List(ctx context.Context) ([]*manifest.Definition, error)

	// Delete removes a definition
	Delete(ctx context.Context, id string) error
}
