package script

import (
	"github.com/KirkDiggler/creaturescripts/internal/entities"
)

// tempHandleBase is the first handle given to items without a unique id.
// Map unique ids live below it.
const tempHandleBase Handle = 70000

// EntryRef identifies a compiled script entry point. Zero means none.
type EntryRef int

// Env is one reentrant execution slot. It owns the handles registered while
// it is reserved and the diagnostic context reported on script faults.
type Env struct {
	depth  int
	things map[Handle]any
	alloc  func() Handle

	realPos   entities.Position
	eventDesc string
	scriptID  EntryRef
}

// NewEnv creates a standalone slot at the given depth. Runtimes create their
// own slots; this is for runtime implementations and test doubles.
func NewEnv(depth int) *Env {
	next := tempHandleBase
	return &Env{
		depth:  depth,
		things: make(map[Handle]any),
		alloc: func() Handle {
			h := next
			next++
			return h
		},
	}
}

// Depth is the nesting level of the slot, starting at 1
func (e *Env) Depth() int {
	return e.depth
}

// AddThing registers a world object and returns the handle scripts see.
// Creatures are addressed by their id, items by their unique id when they
// have one and by a temporary handle otherwise. Nil objects map to 0.
func (e *Env) AddThing(thing any) Handle {
	switch t := thing.(type) {
	case nil:
		return 0
	case *entities.Creature:
		if t == nil {
			return 0
		}
		h := Handle(t.ID)
		e.things[h] = t
		return h
	case *entities.Item:
		if t == nil {
			return 0
		}
		h := Handle(t.UniqueID)
		if h == 0 {
			h = e.alloc()
		}
		e.things[h] = t
		return h
	default:
		h := e.alloc()
		e.things[h] = t
		return h
	}
}

// Thing registers a world object and returns its thing table
// {uid, itemid, type, actionid}. Creatures report itemid 1 and their
// creature type; nil objects produce a table of zeros.
func (e *Env) Thing(thing any) Table {
	switch t := thing.(type) {
	case *entities.Creature:
		if t == nil {
			break
		}
		return thingTable(e.AddThing(t), 1, int64(t.Type), 0)
	case *entities.Item:
		if t == nil {
			break
		}
		return thingTable(e.AddThing(t), int64(t.ItemID), int64(t.SubType), int64(t.ActionID))
	}
	return thingTable(0, 0, 0, 0)
}

// Lookup resolves a handle registered on this slot
func (e *Env) Lookup(h Handle) (any, bool) {
	thing, ok := e.things[h]
	return thing, ok
}

// SetRealPos records where the event happened
func (e *Env) SetRealPos(pos entities.Position) {
	e.realPos = pos
}

// RealPos returns the recorded event position
func (e *Env) RealPos() entities.Position {
	return e.realPos
}

// SetEventDesc records a short description of the event, usually the actor name
func (e *Env) SetEventDesc(desc string) {
	e.eventDesc = desc
}

// EventDesc returns the recorded event description
func (e *Env) EventDesc() string {
	return e.eventDesc
}

// SetScriptID records the compiled entry being run
func (e *Env) SetScriptID(ref EntryRef) {
	e.scriptID = ref
}

// ScriptID returns the compiled entry being run
func (e *Env) ScriptID() EntryRef {
	return e.scriptID
}

func (e *Env) reset() {
	clear(e.things)
	e.realPos = entities.Position{}
	e.eventDesc = ""
	e.scriptID = 0
}
