package loader

//go:generate mockgen -destination=mock/mock_source.go -package=mockloader -source=source.go

import (
	"context"

	"github.com/KirkDiggler/creaturescripts/internal/manifest"
)

// Source supplies the definitions to load. definitions.Repository satisfies
// it, as does ManifestSource.
type Source interface {
	List(ctx context.Context) ([]*manifest.Definition, error)
}

// ManifestSource reads definitions from a manifest file on every List
type ManifestSource struct {
	path string
}

// NewManifestSource creates a source for the manifest at path
func NewManifestSource(path string) *ManifestSource {
	return &ManifestSource{path: path}
}

// Path returns the manifest file
func (s *ManifestSource) Path() string {
	return s.path
}

// List loads the manifest. Script paths come back resolved against the
// manifest directory.
func (s *ManifestSource) List(ctx context.Context) ([]*manifest.Definition, error) {
	m, err := manifest.Load(s.path)
	if err != nil {
		return nil, err
	}

	out := make([]*manifest.Definition, 0, len(m.Events))
	for _, d := range m.Events {
		resolved := *d
		resolved.Script = m.ScriptPath(d)
		out = append(out, &resolved)
	}
	return out, nil
}
