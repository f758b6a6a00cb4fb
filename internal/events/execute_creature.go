package events

import (
	"github.com/KirkDiggler/creaturescripts/internal/entities"
	"github.com/KirkDiggler/creaturescripts/internal/script"
)

// ExecuteThink runs onThink(cid, interval) with the interval in milliseconds
func (d *Descriptor) ExecuteThink(creature *entities.Creature, interval uint32) bool {
	return d.execute("ExecuteThink", creature, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", creature),
			arg("interval", script.Int(interval)),
		}
	})
}

// ExecuteDirection runs onDirection(cid, old, current)
func (d *Descriptor) ExecuteDirection(creature *entities.Creature, old, current entities.Direction) bool {
	return d.execute("ExecuteDirection", creature, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", creature),
			arg("old", script.Int(old)),
			arg("current", script.Int(current)),
		}
	})
}

// ExecuteOutfit runs onOutfit(cid, old, current)
func (d *Descriptor) ExecuteOutfit(creature *entities.Creature, old, current entities.Outfit) bool {
	return d.execute("ExecuteOutfit", creature, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", creature),
			arg("old", script.OutfitTable(old)),
			arg("current", script.OutfitTable(current)),
		}
	})
}

// ExecuteMove runs onMove(cid, fromPosition, toPosition)
func (d *Descriptor) ExecuteMove(creature *entities.Creature, fromPos, toPos entities.Position) bool {
	return d.execute("ExecuteMove", creature, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", creature),
			positionArg("fromPosition", fromPos, 0),
			positionArg("toPosition", toPos, 0),
		}
	})
}

// ExecuteMoveItem runs onMoveItem(cid, item, count, toContainer, fromContainer, fromPos, toPos).
// fromStack is the stack index the item was taken from.
func (d *Descriptor) ExecuteMoveItem(
	player *entities.Creature,
	item *entities.Item,
	count uint8,
	fromPos, toPos entities.Position,
	toContainer, fromContainer *entities.Item,
	fromStack int16,
) bool {
	return d.execute("ExecuteMoveItem", player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			thingArg(env, "item", item),
			arg("count", script.Int(count)),
			thingArg(env, "toContainer", toContainer),
			thingArg(env, "fromContainer", fromContainer),
			positionArg("fromPos", fromPos, int(fromStack)),
			positionArg("toPos", toPos, 0),
		}
	})
}
