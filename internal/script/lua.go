package script

import (
	"fmt"
	"log"
	"math"

	"github.com/Shopify/go-lua"

	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
)

// entriesKey is the registry field holding compiled entry functions
const entriesKey = "creaturescripts.entries"

// LuaRuntime implements Runtime on a single Lua state.
//
// It is not safe for concurrent use. Nested calls (a handler triggering
// another event) happen on the same goroutine and share the state, each in
// its own slot.
type LuaRuntime struct {
	name     string
	state    *lua.State
	envs     []*Env
	depth    int
	nextTemp Handle
	entries  int
	chunks   map[EntryRef]string
}

// NewLuaRuntime creates a runtime with maxEnvs execution slots
func NewLuaRuntime(name string, maxEnvs int) *LuaRuntime {
	if maxEnvs < 1 {
		maxEnvs = 1
	}

	r := &LuaRuntime{
		name:     name,
		envs:     make([]*Env, maxEnvs),
		nextTemp: tempHandleBase,
	}
	for i := range r.envs {
		env := NewEnv(i + 1)
		env.alloc = r.allocTemp
		r.envs[i] = env
	}
	r.initState()

	return r
}

func (r *LuaRuntime) initState() {
	r.state = lua.NewState()
	lua.OpenLibraries(r.state)

	r.state.NewTable()
	r.state.SetField(lua.RegistryIndex, entriesKey)

	r.registerBindings()

	r.entries = 0
	r.chunks = make(map[EntryRef]string)
}

// Name identifies the runtime in logs
func (r *LuaRuntime) Name() string {
	return r.name
}

// Slots is the total number of execution slots
func (r *LuaRuntime) Slots() int {
	return len(r.envs)
}

// Depth is the number of reserved slots
func (r *LuaRuntime) Depth() int {
	return r.depth
}

// ReserveEnv implements Runtime
func (r *LuaRuntime) ReserveEnv() (*Env, error) {
	if r.depth >= len(r.envs) {
		return nil, dnderr.ReentrancyExhausted(len(r.envs))
	}

	env := r.envs[r.depth]
	r.depth++
	return env, nil
}

// ReleaseEnv implements Runtime
func (r *LuaRuntime) ReleaseEnv(env *Env) {
	if env == nil || r.depth == 0 {
		return
	}

	top := r.envs[r.depth-1]
	if top != env {
		log.Printf("%s.ReleaseEnv: slot %d is not on top (slot %d is), not released", r.name, env.depth, top.depth)
		return
	}

	r.depth--
	top.reset()
	if r.depth == 0 {
		r.nextTemp = tempHandleBase
	}
}

// RunBuffer implements Runtime
func (r *LuaRuntime) RunBuffer(env *Env, source string) error {
	l := r.state
	top := l.Top()
	defer l.SetTop(top)

	l.PushNil()
	l.SetGlobal(ResultGlobal)

	chunk := "=" + r.name
	if env != nil && env.eventDesc != "" {
		chunk = fmt.Sprintf("=%s (%s)", r.name, env.eventDesc)
	}

	if err := lua.LoadBuffer(l, source, chunk, ""); err != nil {
		return r.fault(env, err, chunk)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return r.fault(env, err, chunk)
	}

	return nil
}

// GlobalBool implements Runtime
func (r *LuaRuntime) GlobalBool(name string, def bool) bool {
	l := r.state
	l.Global(name)
	defer l.Pop(1)

	return verdict(l, -1, def)
}

// Call implements Runtime
func (r *LuaRuntime) Call(env *Env, ref EntryRef, args []Arg) (bool, error) {
	l := r.state
	top := l.Top()
	defer l.SetTop(top)

	chunk := r.chunks[ref]
	l.Field(lua.RegistryIndex, entriesKey)
	l.RawGetInt(-1, int(ref))
	if !l.IsFunction(-1) {
		return false, dnderr.Newf(dnderr.CodeScriptFault, "no compiled entry %d", ref)
	}

	for _, arg := range args {
		push(l, arg.Value)
	}

	if err := l.ProtectedCall(len(args), 1, 0); err != nil {
		return false, r.fault(env, err, chunk)
	}

	return verdict(l, -1, true), nil
}

// Compile implements Runtime
func (r *LuaRuntime) Compile(chunkName, source, entry string) (EntryRef, error) {
	l := r.state
	top := l.Top()
	defer l.SetTop(top)

	if err := lua.LoadBuffer(l, source, "@"+chunkName, ""); err != nil {
		return 0, dnderr.ScriptFault(err, chunkName)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return 0, dnderr.ScriptFault(err, chunkName)
	}

	l.Global(entry)
	if !l.IsFunction(-1) {
		return 0, dnderr.Newf(dnderr.CodeScriptFault, "event %s not found in %s", entry, chunkName).
			WithMeta("chunk", chunkName)
	}

	r.entries++
	ref := EntryRef(r.entries)

	l.Field(lua.RegistryIndex, entriesKey)
	l.PushValue(-2)
	l.RawSetInt(-2, int(ref))

	// the next script defining the same callback must not see this one
	l.PushNil()
	l.SetGlobal(entry)

	r.chunks[ref] = chunkName
	return ref, nil
}

// Reset implements Runtime
func (r *LuaRuntime) Reset() error {
	if r.depth > 0 {
		return dnderr.Newf(dnderr.CodeInternal, "cannot reset %s with %d slots in use", r.name, r.depth)
	}

	r.initState()
	return nil
}

// SetGlobal assigns a global variable
func (r *LuaRuntime) SetGlobal(name string, v Value) {
	push(r.state, v)
	r.state.SetGlobal(name)
}

// Global converts a global variable to Go: nil, bool, int64 for integral
// numbers, float64, string, []any for sequences and map[string]any for
// other tables.
func (r *LuaRuntime) Global(name string) any {
	l := r.state
	l.Global(name)
	defer l.Pop(1)

	return toGo(l, -1, 0)
}

// DoString runs source outside of any slot; meant for setup code
func (r *LuaRuntime) DoString(source string) error {
	l := r.state
	top := l.Top()
	defer l.SetTop(top)

	if err := lua.LoadBuffer(l, source, "="+r.name, ""); err != nil {
		return dnderr.ScriptFault(err, r.name)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return dnderr.ScriptFault(err, r.name)
	}
	return nil
}

func (r *LuaRuntime) allocTemp() Handle {
	h := r.nextTemp
	r.nextTemp++
	return h
}

// lookup resolves a handle against every reserved slot, innermost first
func (r *LuaRuntime) lookup(h Handle) (any, bool) {
	for i := r.depth - 1; i >= 0; i-- {
		if thing, ok := r.envs[i].Lookup(h); ok {
			return thing, true
		}
	}
	return nil, false
}

func (r *LuaRuntime) fault(env *Env, err error, chunk string) error {
	fault := dnderr.ScriptFault(err, chunk)
	if env != nil {
		fault.WithMeta("event", env.eventDesc).
			WithMeta("position", env.realPos.String()).
			WithMeta("script_id", int(env.scriptID))
		log.Printf("%s: script fault in %s (event %q at %s): %v",
			r.name, chunk, env.eventDesc, env.realPos, err)
	}
	return fault
}

func push(l *lua.State, v Value) {
	switch v := v.(type) {
	case nil, Nil:
		l.PushNil()
	case Bool:
		l.PushBoolean(bool(v))
	case Int:
		l.PushInteger(int(v))
	case Handle:
		l.PushInteger(int(v))
	case String:
		l.PushString(string(v))
	case Table:
		l.CreateTable(0, len(v))
		for _, f := range v {
			push(l, f.Value)
			l.SetField(-2, f.Key)
		}
	case List:
		l.CreateTable(len(v), 0)
		for i, item := range v {
			push(l, item)
			l.RawSetInt(-2, i+1)
		}
	default:
		panic("script: unknown value type")
	}
}

// verdict reads a handler result: nil yields def, numbers are true unless 0,
// anything else follows Lua truthiness
func verdict(l *lua.State, index int, def bool) bool {
	switch l.TypeOf(index) {
	case lua.TypeNil, lua.TypeNone:
		return def
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	case lua.TypeNumber:
		n, _ := l.ToNumber(index)
		return n != 0
	default:
		return true
	}
}

const maxTableDepth = 8

func toGo(l *lua.State, index, depth int) any {
	switch l.TypeOf(index) {
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	case lua.TypeNumber:
		n, _ := l.ToNumber(index)
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n)
		}
		return n
	case lua.TypeString:
		s, _ := l.ToString(index)
		return s
	case lua.TypeTable:
		if depth >= maxTableDepth {
			return nil
		}
		return tableToGo(l, l.AbsIndex(index), depth+1)
	default:
		return nil
	}
}

func tableToGo(l *lua.State, index, depth int) any {
	count, maxIndex := 0, 0
	sequence := true
	l.PushNil()
	for l.Next(index) {
		if sequence {
			if idx, ok := l.ToInteger(-2); ok && l.TypeOf(-2) == lua.TypeNumber && idx > 0 {
				count++
				maxIndex = max(maxIndex, idx)
			} else {
				sequence = false
			}
		}
		l.Pop(1)
	}

	if sequence && count > 0 && count == maxIndex {
		seq := make([]any, 0, count)
		for i := 1; i <= count; i++ {
			l.RawGetInt(index, i)
			seq = append(seq, toGo(l, -1, depth))
			l.Pop(1)
		}
		return seq
	}

	record := make(map[string]any)
	l.PushNil()
	for l.Next(index) {
		if l.TypeOf(-2) == lua.TypeString {
			key, _ := l.ToString(-2)
			record[key] = toGo(l, -1, depth)
		}
		l.Pop(1)
	}
	return record
}
