package loader

import (
	"context"
	"log"

	"github.com/KirkDiggler/creaturescripts/internal/manifest"
)

// Store is a definition source that can also be written to.
// definitions.Repository satisfies it.
type Store interface {
	Source
	Create(ctx context.Context, definition *manifest.Definition) error
}

// Seed copies a manifest into an empty store and returns how many
// definitions were written. Script paths are stored as the manifest writes
// them, relative to its directory, so loaders reading the store use that
// directory as their ScriptDir. A store that already holds definitions is
// left alone.
func Seed(ctx context.Context, store Store, manifestPath string) (int, error) {
	existing, err := store.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return 0, err
	}

	for _, d := range m.Events {
		def := *d
		def.ID = ""
		if err := store.Create(ctx, &def); err != nil {
			return 0, err
		}
	}

	log.Printf("Loader.Seed: seeded %d definitions from %s", len(m.Events), manifestPath)
	return len(m.Events), nil
}
