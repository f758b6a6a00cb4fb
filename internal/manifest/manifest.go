package manifest

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
	"github.com/KirkDiggler/creaturescripts/internal/events"
)

// DefaultNode is the definition node name used when a definition names none
const DefaultNode = "event"

// Definition describes one creature event: what it listens to and which
// script handles it. Exactly one of Script or Buffer is set.
type Definition struct {
	ID   string `yaml:"id,omitempty" json:"id"`
	Node string `yaml:"node,omitempty" json:"node,omitempty"`
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`

	// Script is a file holding the callback, relative to the manifest directory
	Script string `yaml:"script,omitempty" json:"script,omitempty"`

	// Buffer is inline source run as a one-shot chunk
	Buffer string `yaml:"buffer,omitempty" json:"buffer,omitempty"`

	Override bool `yaml:"override,omitempty" json:"override,omitempty"`
}

var _ events.Node = (*Definition)(nil)

// Attribute implements events.Node. Empty values count as missing.
func (d *Definition) Attribute(key string) (string, bool) {
	var value string
	switch key {
	case "id":
		value = d.ID
	case "name":
		value = d.Name
	case "type":
		value = d.Type
	case "script":
		value = d.Script
	case "buffer":
		value = d.Buffer
	case "override":
		return strconv.FormatBool(d.Override), true
	}
	return value, value != ""
}

// NodeName returns the node the definition was declared as
func (d *Definition) NodeName() string {
	if d.Node == "" {
		return DefaultNode
	}
	return d.Node
}

// Validate checks the definition without touching a registry
func (d *Definition) Validate() error {
	if d.Name == "" {
		return dnderr.MissingName()
	}
	if events.ResolveKind(d.Type) == events.KindNone {
		return dnderr.InvalidTypef("invalid type %q for creature event %s", d.Type, d.Name).
			WithMeta("name", d.Name)
	}
	if (d.Script == "") == (d.Buffer == "") {
		return dnderr.InvalidArgument("creature event " + d.Name + " needs exactly one of script or buffer").
			WithMeta("name", d.Name)
	}
	return nil
}

// Manifest is a list of definitions read from one file
type Manifest struct {
	Events []*Definition `yaml:"events"`

	// Dir is the directory script paths are relative to
	Dir string `yaml:"-"`
}

// Load reads a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dnderr.NotFoundf("manifest %s not found", path)
		}
		return nil, dnderr.Wrapf(err, "failed to read manifest %s", path)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to parse manifest %s", path)
	}
	m.Dir = filepath.Dir(path)

	return m, nil
}

// Parse decodes manifest YAML
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid manifest yaml")
	}

	for i, d := range m.Events {
		if d == nil {
			return nil, dnderr.Newf(dnderr.CodeInvalidArgument, "empty definition at index %d", i)
		}
	}

	return &m, nil
}

// Validate reports every invalid definition, keyed by its position
func (m *Manifest) Validate() map[int]error {
	problems := make(map[int]error)
	for i, d := range m.Events {
		if err := d.Validate(); err != nil {
			problems[i] = err
		}
	}
	return problems
}

// ScriptPath resolves a definition's script file
func (m *Manifest) ScriptPath(d *Definition) string {
	if d.Script == "" || filepath.IsAbs(d.Script) {
		return d.Script
	}
	return filepath.Join(m.Dir, d.Script)
}
