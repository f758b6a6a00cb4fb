package events

import (
	"github.com/KirkDiggler/creaturescripts/internal/entities"
	"github.com/KirkDiggler/creaturescripts/internal/script"
)

// ExecuteLogin runs onLogin(cid)
func (d *Descriptor) ExecuteLogin(player *entities.Creature) bool {
	return d.execute("ExecuteLogin", player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
		}
	})
}

// ExecuteLogout runs onLogout(cid, forceLogout)
func (d *Descriptor) ExecuteLogout(player *entities.Creature, forced bool) bool {
	return d.execute("ExecuteLogout", player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			arg("forceLogout", script.Bool(forced)),
		}
	})
}

// ExecuteChannelJoin runs onJoinChannel(cid, channel, users)
func (d *Descriptor) ExecuteChannelJoin(player *entities.Creature, channelID uint16, users []*entities.Creature) bool {
	return d.executeChannel("ExecuteChannelJoin", player, channelID, users)
}

// ExecuteChannelLeave runs onLeaveChannel(cid, channel, users)
func (d *Descriptor) ExecuteChannelLeave(player *entities.Creature, channelID uint16, users []*entities.Creature) bool {
	return d.executeChannel("ExecuteChannelLeave", player, channelID, users)
}

func (d *Descriptor) executeChannel(op string, player *entities.Creature, channelID uint16, users []*entities.Creature) bool {
	return d.execute(op, player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			arg("channel", script.Int(channelID)),
			arg("users", creatureList(env, users)),
		}
	})
}

// ExecuteAdvance runs onAdvance(cid, skill, oldLevel, newLevel)
func (d *Descriptor) ExecuteAdvance(player *entities.Creature, skill entities.Skill, oldLevel, newLevel uint32) bool {
	return d.execute("ExecuteAdvance", player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			arg("skill", script.Int(skill)),
			arg("oldLevel", script.Int(oldLevel)),
			arg("newLevel", script.Int(newLevel)),
		}
	})
}

// ExecuteTextEdit runs onTextEdit(cid, item, newText)
func (d *Descriptor) ExecuteTextEdit(player *entities.Creature, item *entities.Item, newText string) bool {
	return d.execute("ExecuteTextEdit", player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			thingArg(env, "item", item),
			arg("newText", script.String(newText)),
		}
	})
}

// ExecuteReportBug runs onReportBug(cid, comment)
func (d *Descriptor) ExecuteReportBug(player *entities.Creature, comment string) bool {
	return d.execute("ExecuteReportBug", player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			arg("comment", script.String(comment)),
		}
	})
}

// ExecuteLook runs onLook(cid, thing, position, lookDistance). The position
// carries the stack index of the looked-at thing.
func (d *Descriptor) ExecuteLook(player *entities.Creature, thing entities.Thing, position entities.Position, stackpos int16, lookDistance int32) bool {
	return d.execute("ExecuteLook", player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			thingArg(env, "thing", thing),
			positionArg("position", position, int(stackpos)),
			arg("lookDistance", script.Int(lookDistance)),
		}
	})
}
