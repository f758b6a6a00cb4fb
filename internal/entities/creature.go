package entities

// CreatureType distinguishes players from monsters and NPCs
type CreatureType int

const (
	CreatureTypePlayer CreatureType = iota + 1
	CreatureTypeMonster
	CreatureTypeNPC
)

// String returns the string representation of the creature type
func (t CreatureType) String() string {
	switch t {
	case CreatureTypePlayer:
		return "player"
	case CreatureTypeMonster:
		return "monster"
	case CreatureTypeNPC:
		return "npc"
	default:
		return "unknown"
	}
}

// Creature is anything alive on the map: players, monsters and NPCs.
// Player-only events take a *Creature whose Type is CreatureTypePlayer.
type Creature struct {
	ID       uint32       `json:"id"`
	Name     string       `json:"name"`
	Type     CreatureType `json:"type"`
	Position Position     `json:"position"`
	Outfit   Outfit       `json:"outfit"`
	Facing   Direction    `json:"facing"`
}

// IsPlayer reports whether the creature is a player
func (c *Creature) IsPlayer() bool {
	return c != nil && c.Type == CreatureTypePlayer
}

// GetName returns the creature name, or an empty string for nil
func (c *Creature) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

// NewPlayer creates a player creature
func NewPlayer(id uint32, name string, pos Position) *Creature {
	return &Creature{
		ID:       id,
		Name:     name,
		Type:     CreatureTypePlayer,
		Position: pos,
	}
}

// NewMonster creates a monster creature
func NewMonster(id uint32, name string, pos Position) *Creature {
	return &Creature{
		ID:       id,
		Name:     name,
		Type:     CreatureTypeMonster,
		Position: pos,
	}
}
