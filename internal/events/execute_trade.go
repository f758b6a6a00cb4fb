package events

import (
	"github.com/KirkDiggler/creaturescripts/internal/entities"
	"github.com/KirkDiggler/creaturescripts/internal/script"
)

// ExecuteMailSend runs onSendMail(cid, receiver, item, openBox)
func (d *Descriptor) ExecuteMailSend(player, receiver *entities.Creature, item *entities.Item, openBox bool) bool {
	return d.executeMail("ExecuteMailSend", "receiver", player, receiver, item, openBox)
}

// ExecuteMailReceive runs onReceiveMail(cid, sender, item, openBox)
func (d *Descriptor) ExecuteMailReceive(player, sender *entities.Creature, item *entities.Item, openBox bool) bool {
	return d.executeMail("ExecuteMailReceive", "sender", player, sender, item, openBox)
}

func (d *Descriptor) executeMail(op, counterpartName string, player, counterpart *entities.Creature, item *entities.Item, openBox bool) bool {
	return d.execute(op, player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			creatureArg(env, counterpartName, counterpart),
			thingArg(env, "item", item),
			arg("openBox", script.Bool(openBox)),
		}
	})
}

// ExecuteTradeRequest runs onTradeRequest(cid, target, item)
func (d *Descriptor) ExecuteTradeRequest(player, target *entities.Creature, item *entities.Item) bool {
	return d.execute("ExecuteTradeRequest", player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			creatureArg(env, "target", target),
			thingArg(env, "item", item),
		}
	})
}

// ExecuteTradeAccept runs onTradeAccept(cid, target, item, targetItem)
func (d *Descriptor) ExecuteTradeAccept(player, target *entities.Creature, item, targetItem *entities.Item) bool {
	return d.execute("ExecuteTradeAccept", player, func(env *script.Env) []script.Arg {
		return []script.Arg{
			creatureArg(env, "cid", player),
			creatureArg(env, "target", target),
			thingArg(env, "item", item),
			thingArg(env, "targetItem", targetItem),
		}
	})
}
