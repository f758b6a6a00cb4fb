package loader

//go:generate mockgen -destination=mock/mock_service.go -package=mockloader -source=service.go

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"

	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
	"github.com/KirkDiggler/creaturescripts/internal/events"
	"github.com/KirkDiggler/creaturescripts/internal/manifest"
)

// Service fills a registry from a definition source
type Service interface {
	// Load configures and registers every definition from the source.
	// Invalid definitions are rejected individually; only a failing source
	// fails the load.
	Load(ctx context.Context) (*Result, error)

	// Reload clears the registry and loads again. Concurrent calls share
	// one reload.
	Reload(ctx context.Context) (*Result, error)
}

// Result summarizes a load
type Result struct {
	// Registered counts descriptors appended to the registry
	Registered int

	// Merged counts descriptors copied into an existing one
	Merged int

	// Ignored counts duplicates of an already loaded descriptor
	Ignored int

	Rejected []*Rejection
}

// Rejection is a definition that could not be registered
type Rejection struct {
	Index int
	Name  string
	Err   error
}

// Total returns the number of definitions seen
func (r *Result) Total() int {
	return r.Registered + r.Merged + r.Ignored + len(r.Rejected)
}

type service struct {
	registry  *events.Registry
	source    Source
	scriptDir string

	mu      sync.Mutex
	reloads singleflight.Group
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Registry *events.Registry
	Source   Source

	// ScriptDir resolves relative script paths. Manifest sources already
	// resolve theirs.
	ScriptDir string
}

// NewService creates a new loader service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("loader: config is required")
	}
	if cfg.Registry == nil {
		panic("loader: registry is required")
	}
	if cfg.Source == nil {
		panic("loader: source is required")
	}

	return &service{
		registry:  cfg.Registry,
		source:    cfg.Source,
		scriptDir: cfg.ScriptDir,
	}
}

func (s *service) Load(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *service) Reload(ctx context.Context) (*Result, error) {
	v, err, _ := s.reloads.Do("reload", func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if err := s.registry.ClearAll(); err != nil {
			return nil, err
		}
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (s *service) load(ctx context.Context) (*Result, error) {
	definitions, err := s.source.List(ctx)
	if err != nil {
		log.Printf("Loader.Load: failed to list definitions: %v", err)
		return nil, dnderr.Wrap(err, "failed to list creature event definitions")
	}

	result := &Result{}
	for i, def := range definitions {
		if err := ctx.Err(); err != nil {
			return nil, dnderr.Wrap(err, "load cancelled")
		}
		if err := s.loadOne(def, result); err != nil {
			log.Printf("Loader.Load: rejected creature event %q at index %d: %v", def.Name, i, err)
			result.Rejected = append(result.Rejected, &Rejection{Index: i, Name: def.Name, Err: err})
		}
	}

	log.Printf("Loader.Load: registered %d, merged %d, ignored %d, rejected %d creature events",
		result.Registered, result.Merged, result.Ignored, len(result.Rejected))
	return result, nil
}

func (s *service) loadOne(def *manifest.Definition, result *Result) error {
	d := s.registry.NewEvent(def.NodeName())
	if d == nil {
		return dnderr.Newf(dnderr.CodeInvalidArgument, "unknown definition node %q", def.NodeName())
	}
	if err := d.Configure(def); err != nil {
		return err
	}

	switch {
	case def.Script != "" && def.Buffer != "":
		return dnderr.InvalidArgument("creature event " + def.Name + " sets both script and buffer")
	case def.Script == "" && def.Buffer == "":
		return dnderr.InvalidArgument("creature event " + def.Name + " has no script or buffer")
	}

	// a duplicate that would be ignored is never compiled
	if s.registry.Outcome(d.Name(), d.Kind(), def.Override) == events.OutcomeIgnored {
		log.Printf("Loader.Load: duplicate creature event %s ignored", d.Name())
		result.Ignored++
		return nil
	}

	if def.Script != "" {
		path := s.scriptPath(def.Script)
		source, err := os.ReadFile(path)
		if err != nil {
			return dnderr.Wrapf(err, "failed to read script %s", path)
		}
		if err := d.Compile(path, string(source)); err != nil {
			return err
		}
	} else {
		d.SetBuffer(def.Buffer)
	}

	outcome, err := s.registry.RegisterOutcome(d, def.Override)
	if err != nil {
		return err
	}

	switch outcome {
	case events.OutcomeAppended:
		result.Registered++
	case events.OutcomeMerged:
		result.Merged++
	default:
		log.Printf("Loader.Load: duplicate creature event %s ignored", d.Name())
		result.Ignored++
	}
	return nil
}

func (s *service) scriptPath(path string) string {
	if s.scriptDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.scriptDir, path)
}
