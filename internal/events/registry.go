package events

import (
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/creaturescripts/internal/entities"
	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
	"github.com/KirkDiggler/creaturescripts/internal/script"
)

// RegistryConfig holds the dependencies of a Registry
type RegistryConfig struct {
	Runtime script.Runtime

	// WarSystem adds the war argument to kill handlers
	WarSystem bool
}

// Registry owns the creature event descriptors in registration order.
//
// Dispatch runs on a snapshot of the descriptor list; callers are expected to
// keep reloads and dispatch from overlapping.
type Registry struct {
	runtime   script.Runtime
	warSystem bool

	mu     sync.RWMutex
	events []*Descriptor
}

// NewRegistry creates an empty registry
func NewRegistry(cfg *RegistryConfig) *Registry {
	if cfg == nil || cfg.Runtime == nil {
		panic("events: registry requires a script runtime")
	}

	return &Registry{
		runtime:   cfg.Runtime,
		warSystem: cfg.WarSystem,
	}
}

// Runtime returns the script runtime shared by the descriptors
func (r *Registry) Runtime() script.Runtime {
	return r.runtime
}

// NewEvent creates an unconfigured descriptor for a definition node, or nil
// when the node is not a creature event
func (r *Registry) NewEvent(nodeName string) *Descriptor {
	switch strings.ToLower(nodeName) {
	case "event", "creatureevent", "creaturevent", "creaturescript":
		return NewDescriptor(r.runtime, r.warSystem)
	default:
		return nil
	}
}

// Outcome is what registering a descriptor does to the registry
type Outcome int

const (
	// OutcomeAppended adds the descriptor as a new entry
	OutcomeAppended Outcome = iota

	// OutcomeMerged copies the descriptor into an existing entry
	OutcomeMerged

	// OutcomeIgnored leaves the registry untouched
	OutcomeIgnored
)

// String returns the name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeAppended:
		return "appended"
	case OutcomeMerged:
		return "merged"
	default:
		return "ignored"
	}
}

// Register adds a configured descriptor.
//
// A descriptor with the name and kind of an existing one is merged into it
// when the existing one is unloaded or override is set; the result is then
// override. Anything else is appended and the result is true.
func (r *Registry) Register(d *Descriptor, override bool) (bool, error) {
	outcome, err := r.RegisterOutcome(d, override)
	if err != nil {
		return false, err
	}
	if outcome == OutcomeAppended {
		return true, nil
	}
	return override, nil
}

// RegisterOutcome registers like Register and reports what happened
func (r *Registry) RegisterOutcome(d *Descriptor, override bool) (Outcome, error) {
	if d == nil {
		return OutcomeIgnored, dnderr.InvalidArgument("descriptor is required")
	}
	if !d.Kind().Valid() {
		log.Printf("CreatureEvents.Register: trying to register event %s without type", d.Name())
		return OutcomeIgnored, dnderr.InvalidKind(d.Name())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, outcome := r.resolve(d.Name(), d.Kind(), override)
	switch outcome {
	case OutcomeAppended:
		r.events = append(r.events, d)
	case OutcomeMerged:
		existing.CopyFrom(d)
	}
	return outcome, nil
}

// Outcome reports what registering a descriptor with this name and kind
// would do, without registering it
func (r *Registry) Outcome(name string, kind Kind, override bool) Outcome {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, outcome := r.resolve(name, kind, override)
	return outcome
}

func (r *Registry) resolve(name string, kind Kind, override bool) (*Descriptor, Outcome) {
	existing := r.lookup(name)
	if existing == nil || existing.Kind() != kind {
		return nil, OutcomeAppended
	}
	if !existing.Loaded() || override {
		return existing, OutcomeMerged
	}
	return existing, OutcomeIgnored
}

// Lookup returns the first descriptor with the given name
func (r *Registry) Lookup(name string) *Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lookup(name)
}

func (r *Registry) lookup(name string) *Descriptor {
	for _, d := range r.events {
		if d.Name() == name {
			return d
		}
	}
	return nil
}

// ByKind returns the loaded descriptors of a kind in registration order
func (r *Registry) ByKind(kind Kind) []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Descriptor
	for _, d := range r.events {
		if d.Kind() == kind && d.Loaded() {
			out = append(out, d)
		}
	}
	return out
}

// Descriptors returns every registered descriptor, loaded or not
func (r *Registry) Descriptors() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, len(r.events))
	copy(out, r.events)
	return out
}

// BroadcastLogin runs every login handler. All handlers run; the result is
// false if any of them denied.
func (r *Registry) BroadcastLogin(player *entities.Creature) bool {
	return r.broadcast(KindLogin, func(d *Descriptor) bool {
		return d.ExecuteLogin(player)
	})
}

// BroadcastLogout runs every logout handler with the same reduction as
// BroadcastLogin
func (r *Registry) BroadcastLogout(player *entities.Creature, forced bool) bool {
	return r.broadcast(KindLogout, func(d *Descriptor) bool {
		return d.ExecuteLogout(player, forced)
	})
}

func (r *Registry) broadcast(kind Kind, run func(d *Descriptor) bool) bool {
	result := true
	for _, d := range r.ByKind(kind) {
		if !run(d) {
			result = false
		}
	}
	return result
}

// ClearAll starts a fresh script state and resets every descriptor ahead of
// a reload. Descriptors stay registered so the reload can merge into them.
// When the runtime cannot be reset the descriptors are left as they were.
func (r *Registry) ClearAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.runtime.Reset(); err != nil {
		log.Printf("CreatureEvents.ClearAll: failed to reset script runtime: %v", err)
		return dnderr.Wrap(err, "failed to reset script runtime")
	}

	for _, d := range r.events {
		d.Reset()
	}

	log.Printf("CreatureEvents.ClearAll: cleared %d creature events", len(r.events))
	return nil
}
