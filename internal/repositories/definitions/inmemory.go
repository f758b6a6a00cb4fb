package definitions

import (
	"context"
	"sync"

	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
	"github.com/KirkDiggler/creaturescripts/internal/manifest"
	"github.com/KirkDiggler/creaturescripts/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of Repository
type InMemoryRepository struct {
	mu            sync.RWMutex
	definitions   map[string]*manifest.Definition
	order         []string
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory definition repository
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithGenerator(uuid.NewGoogleUUIDGenerator())
}

// NewInMemoryRepositoryWithGenerator creates a repository with a custom id generator
func NewInMemoryRepositoryWithGenerator(generator uuid.Generator) *InMemoryRepository {
	return &InMemoryRepository{
		definitions:   make(map[string]*manifest.Definition),
		uuidGenerator: generator,
	}
}

// Create stores a new definition
func (r *InMemoryRepository) Create(ctx context.Context, definition *manifest.Definition) error {
	if definition == nil {
		return dnderr.InvalidArgument("definition cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if definition.ID == "" {
		definition.ID = r.uuidGenerator.New()
	}
	if _, exists := r.definitions[definition.ID]; exists {
		return dnderr.AlreadyExistsf("definition with ID '%s' already exists", definition.ID).
			WithMeta("definition_id", definition.ID)
	}

	stored := *definition
	r.definitions[definition.ID] = &stored
	r.order = append(r.order, definition.ID)

	return nil
}

// Get retrieves a definition by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*manifest.Definition, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("definition ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	definition, exists := r.definitions[id]
	if !exists {
		return nil, dnderr.NotFoundf("definition with ID '%s' not found", id).
			WithMeta("definition_id", id)
	}

	result := *definition
	return &result, nil
}

// List returns every definition in creation order
func (r *InMemoryRepository) List(ctx context.Context) ([]*manifest.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*manifest.Definition, 0, len(r.order))
	for _, id := range r.order {
		definition := *r.definitions[id]
		result = append(result, &definition)
	}

	return result, nil
}

// Delete removes a definition
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[id]; !exists {
		return dnderr.NotFoundf("definition with ID '%s' not found", id).
			WithMeta("definition_id", id)
	}

	delete(r.definitions, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
