package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/creaturescripts/internal/events"
	"github.com/KirkDiggler/creaturescripts/internal/script"
	"github.com/KirkDiggler/creaturescripts/internal/services/loader"
)

// loadRegistry builds a registry from the manifest flag and reports rejected
// definitions to w
func loadRegistry(ctx context.Context, w io.Writer) (*events.Registry, *loader.Result, error) {
	runtime := script.NewLuaRuntime("CreatureScript Interface", maxEnvs)
	registry := events.NewRegistry(&events.RegistryConfig{
		Runtime:   runtime,
		WarSystem: warSystem,
	})

	svc := loader.NewService(&loader.ServiceConfig{
		Registry: registry,
		Source:   loader.NewManifestSource(manifestPath),
	})

	result, err := svc.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", manifestPath, err)
	}

	for _, r := range result.Rejected {
		fmt.Fprintf(w, "rejected #%d %s: %v\n", r.Index, r.Name, r.Err)
	}
	return registry, result, nil
}

func describe(w io.Writer, d *events.Descriptor) {
	fmt.Fprintf(w, "%-24s %-14s %-9s %t\n", d.Name(), d.Kind(), d.Mode(), d.Loaded())
}
