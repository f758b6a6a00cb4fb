package events

import (
	"github.com/KirkDiggler/creaturescripts/internal/entities"
	"github.com/KirkDiggler/creaturescripts/internal/script"
)

// ExecuteStatsChange runs onStatsChange(cid, attacker, type, combat, value).
// A nil attacker is passed as handle 0.
func (d *Descriptor) ExecuteStatsChange(
	creature, attacker *entities.Creature,
	changeType entities.StatsChange,
	combat entities.CombatType,
	value int32,
) bool {
	return d.execute("ExecuteStatsChange", creature, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", creature),
			creatureArg(env, "attacker", attacker),
			arg("type", script.Int(changeType)),
			arg("combat", script.Int(combat)),
			arg("value", script.Int(value)),
		}
	})
}

// ExecuteAreaCombat runs onAreaCombat(cid, ground, position, aggressive)
func (d *Descriptor) ExecuteAreaCombat(creature *entities.Creature, tile *entities.Tile, aggressive bool) bool {
	var (
		ground *entities.Item
		pos    entities.Position
	)
	if tile != nil {
		ground = tile.Ground
		pos = tile.Position
	}

	return d.execute("ExecuteAreaCombat", creature, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", creature),
			thingArg(env, "ground", ground),
			positionArg("position", pos, 0),
			arg("aggressive", script.Bool(aggressive)),
		}
	})
}

// ExecutePush runs onPush(cid, target)
func (d *Descriptor) ExecutePush(player, target *entities.Creature) bool {
	return d.executeTarget("ExecutePush", player, target)
}

// ExecuteTarget runs onTarget(cid, target)
func (d *Descriptor) ExecuteTarget(creature, target *entities.Creature) bool {
	return d.executeTarget("ExecuteTarget", creature, target)
}

// ExecuteFollow runs onFollow(cid, target)
func (d *Descriptor) ExecuteFollow(creature, target *entities.Creature) bool {
	return d.executeTarget("ExecuteFollow", creature, target)
}

// ExecuteCombat runs onCombat(cid, target)
func (d *Descriptor) ExecuteCombat(creature, target *entities.Creature) bool {
	return d.executeTarget("ExecuteCombat", creature, target)
}

// ExecuteAttack runs onAttack(cid, target)
func (d *Descriptor) ExecuteAttack(creature, target *entities.Creature) bool {
	return d.executeTarget("ExecuteAttack", creature, target)
}

// ExecuteCast runs onCast(cid, target). Spells without a target pass nil.
func (d *Descriptor) ExecuteCast(creature, target *entities.Creature) bool {
	return d.execute("ExecuteCast", creature, func(env *script.Env) []script.Arg {
		var targetValue script.Value = script.Nil{}
		if target != nil {
			targetValue = env.AddThing(target)
		}
		return []script.Arg{
			creatureArg(env, "cid", creature),
			arg("target", targetValue),
		}
	})
}

func (d *Descriptor) executeTarget(op string, creature, target *entities.Creature) bool {
	return d.execute(op, creature, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", creature),
			creatureArg(env, "target", target),
		}
	})
}

// ExecuteKill runs onKill(cid, target, damage, flags), plus war when the
// war system is enabled
func (d *Descriptor) ExecuteKill(creature, target *entities.Creature, entry entities.DeathEntry) bool {
	return d.execute("ExecuteKill", creature, func(env *script.Env) []script.Arg {
		args := []script.Arg{
			creatureArg(env, "cid", creature),
			creatureArg(env, "target", target),
			arg("damage", script.Int(entry.Damage)),
			arg("flags", script.Int(entry.Flags())),
		}
		if d.warSystem {
			args = append(args, arg(warParam, script.Int(entry.WarID)))
		}
		return args
	})
}

// ExecuteDeath runs onDeath(cid, corpse, deathList)
func (d *Descriptor) ExecuteDeath(creature *entities.Creature, corpse *entities.Item, entries entities.DeathList) bool {
	return d.execute("ExecuteDeath", creature, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", creature),
			thingArg(env, "corpse", corpse),
			arg("deathList", deathList(env, entries)),
		}
	})
}

// ExecutePrepareDeath runs onPrepareDeath(cid, deathList)
func (d *Descriptor) ExecutePrepareDeath(creature *entities.Creature, entries entities.DeathList) bool {
	return d.execute("ExecutePrepareDeath", creature, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", creature),
			arg("deathList", deathList(env, entries)),
		}
	})
}
