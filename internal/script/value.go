package script

import (
	"github.com/KirkDiggler/creaturescripts/internal/entities"
)

// Value is a script-visible argument. The implementations are closed:
// Nil, Bool, Int, String, Handle, Table and List. Both execution modes
// consume the same values, so a handler sees identical arguments whichever
// way it was loaded.
type Value interface {
	isValue()
}

// Nil is the absent value
type Nil struct{}

// Bool is a native script boolean
type Bool bool

// Int is an integer; enums are passed as their integer value
type Int int64

// String is a script string
type String string

// Handle is an opaque reference to a world object registered on an Env
type Handle uint32

// Field is one key of a record table
type Field struct {
	Key   string
	Value Value
}

// Table is a record with ordered keys
type Table []Field

// List is a sequence, exposed 1-based to scripts
type List []Value

func (Nil) isValue()    {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (String) isValue() {}
func (Handle) isValue() {}
func (Table) isValue()  {}
func (List) isValue()   {}

// Get returns the value of a record field
func (t Table) Get(key string) (Value, bool) {
	for _, f := range t {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Arg is a named positional argument. Name is the local variable bound in
// buffer mode; position in the slice is the parameter index in compiled mode.
type Arg struct {
	Name  string
	Value Value
}

// PositionTable encodes a map position with its stack index
func PositionTable(pos entities.Position, stackpos int) Table {
	return Table{
		{Key: "x", Value: Int(pos.X)},
		{Key: "y", Value: Int(pos.Y)},
		{Key: "z", Value: Int(pos.Z)},
		{Key: "stackpos", Value: Int(stackpos)},
	}
}

// OutfitTable encodes a creature outfit
func OutfitTable(outfit entities.Outfit) Table {
	return Table{
		{Key: "lookType", Value: Int(outfit.LookType)},
		{Key: "lookHead", Value: Int(outfit.LookHead)},
		{Key: "lookBody", Value: Int(outfit.LookBody)},
		{Key: "lookLegs", Value: Int(outfit.LookLegs)},
		{Key: "lookFeet", Value: Int(outfit.LookFeet)},
		{Key: "lookAddons", Value: Int(outfit.LookAddons)},
		{Key: "lookTypeEx", Value: Int(outfit.LookTypeEx)},
	}
}

func thingTable(uid Handle, itemID, subType, actionID int64) Table {
	return Table{
		{Key: "uid", Value: uid},
		{Key: "itemid", Value: Int(itemID)},
		{Key: "type", Value: Int(subType)},
		{Key: "actionid", Value: Int(actionID)},
	}
}
