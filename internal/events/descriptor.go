package events

import (
	"log"

	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
	"github.com/KirkDiggler/creaturescripts/internal/script"
)

// Mode is how a descriptor runs its script
type Mode int

const (
	ModeNotScripted Mode = iota
	ModeBuffer
	ModeCompiled
)

// String returns the name of the mode
func (m Mode) String() string {
	switch m {
	case ModeBuffer:
		return "buffer"
	case ModeCompiled:
		return "compiled"
	default:
		return "none"
	}
}

// Node is a parsed descriptor definition
type Node interface {
	Attribute(key string) (string, bool)
}

// Descriptor is one configured creature event handler
type Descriptor struct {
	runtime   script.Runtime
	warSystem bool

	name   string
	kind   Kind
	loaded bool

	mode   Mode
	entry  script.EntryRef
	buffer string
}

// NewDescriptor creates an unconfigured descriptor bound to runtime.
// Registries hand these out through NewEvent.
func NewDescriptor(runtime script.Runtime, warSystem bool) *Descriptor {
	return &Descriptor{
		runtime:   runtime,
		warSystem: warSystem,
	}
}

// Name returns the descriptor name
func (d *Descriptor) Name() string {
	return d.name
}

// Kind returns the event kind
func (d *Descriptor) Kind() Kind {
	return d.kind
}

// Loaded reports whether the descriptor was configured successfully and
// not reset since
func (d *Descriptor) Loaded() bool {
	return d.loaded
}

// Mode returns how the script is run
func (d *Descriptor) Mode() Mode {
	return d.mode
}

// Configure reads the name and type attributes of a definition
func (d *Descriptor) Configure(node Node) error {
	name, ok := node.Attribute("name")
	if !ok || name == "" {
		log.Printf("CreatureEvent.Configure: no name for creature event")
		return dnderr.MissingName()
	}
	d.name = name

	tag, ok := node.Attribute("type")
	if !ok {
		log.Printf("CreatureEvent.Configure: no type for creature event %s", name)
		return dnderr.InvalidTypef("no type for creature event %s", name).WithMeta("name", name)
	}

	kind := ResolveKind(tag)
	if kind == KindNone {
		log.Printf("CreatureEvent.Configure: no valid type for creature event %s: %s", name, tag)
		return dnderr.InvalidTypef("invalid type %q for creature event %s", tag, name).
			WithMeta("name", name).
			WithMeta("type", tag)
	}

	d.kind = kind
	d.loaded = true
	return nil
}

// SetBuffer switches the descriptor to buffer mode
func (d *Descriptor) SetBuffer(source string) {
	d.mode = ModeBuffer
	d.buffer = source
	d.entry = 0
}

// Compile runs a script chunk and keeps its callback for this descriptor's
// kind as the entry point
func (d *Descriptor) Compile(chunkName, source string) error {
	if !d.kind.Valid() {
		return dnderr.InvalidKind(d.name)
	}

	ref, err := d.runtime.Compile(chunkName, source, d.kind.ScriptEventName())
	if err != nil {
		return dnderr.Wrapf(err, "failed to compile %s for creature event %s", chunkName, d.name)
	}

	d.mode = ModeCompiled
	d.entry = ref
	d.buffer = ""
	return nil
}

// ScriptEventName is the callback a compiled script must define
func (d *Descriptor) ScriptEventName() string {
	return d.kind.ScriptEventName()
}

// ScriptEventParams lists the arguments handed to the script
func (d *Descriptor) ScriptEventParams() []string {
	return d.kind.ScriptEventParams(d.warSystem)
}

// Reset clears loaded state and the script, keeping name and kind so a
// reload can merge into this descriptor
func (d *Descriptor) Reset() {
	d.loaded = false
	d.mode = ModeNotScripted
	d.entry = 0
	d.buffer = ""
}

// CopyFrom replaces this descriptor's contents with other's in place
func (d *Descriptor) CopyFrom(other *Descriptor) {
	d.name = other.name
	d.loaded = other.loaded
	d.mode = other.mode
	d.entry = other.entry
	d.buffer = other.buffer
}
