package entities

import "fmt"

// Position is a map coordinate. Z is the floor.
type Position struct {
	X uint16 `json:"x"`
	Y uint16 `json:"y"`
	Z uint8  `json:"z"`
}

// String returns the position as "(x, y, z)"
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Direction is the way a creature faces
type Direction int

const (
	DirectionNorth Direction = iota
	DirectionEast
	DirectionSouth
	DirectionWest
	DirectionSouthWest
	DirectionSouthEast
	DirectionNorthWest
	DirectionNorthEast
)

// String returns the name of the direction
func (d Direction) String() string {
	names := [...]string{
		"north",
		"east",
		"south",
		"west",
		"southwest",
		"southeast",
		"northwest",
		"northeast",
	}
	if d < DirectionNorth || int(d) >= len(names) {
		return "unknown"
	}
	return names[d]
}
