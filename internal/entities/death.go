package entities

// KillFlags is the bitset passed to kill handlers
type KillFlags uint32

const (
	KillFlagLast        KillFlags = 1 << 0
	KillFlagJustified   KillFlags = 1 << 1
	KillFlagUnjustified KillFlags = 1 << 2
)

// DeathEntry records one contributor to a creature's death. Either Killer
// is set (a creature kill) or KillerName is (a field, a trap, "poison", ...).
type DeathEntry struct {
	Killer      *Creature
	KillerName  string
	Damage      int32
	Last        bool
	Justified   bool
	Unjustified bool

	// WarID is the guild war the kill counted for, zero outside wars
	WarID uint32
}

// IsCreatureKill reports whether the entry refers to a creature
func (e DeathEntry) IsCreatureKill() bool {
	return e.Killer != nil
}

// Flags packs Last/Justified/Unjustified into the script bitset
func (e DeathEntry) Flags() KillFlags {
	var flags KillFlags
	if e.Last {
		flags |= KillFlagLast
	}
	if e.Justified {
		flags |= KillFlagJustified
	}
	if e.Unjustified {
		flags |= KillFlagUnjustified
	}
	return flags
}

// DeathList is the ordered list of death contributors, most relevant first
type DeathList []DeathEntry
