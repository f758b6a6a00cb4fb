package events

import (
	"log"

	"github.com/KirkDiggler/creaturescripts/internal/entities"
	"github.com/KirkDiggler/creaturescripts/internal/script"
)

// argsFunc marshals one event's arguments on the reserved slot
type argsFunc func(env *script.Env) []script.Arg

// execute reserves a slot, marshals the arguments and runs the script in
// whichever mode the descriptor is in. The slot is released on every path.
// A full slot stack denies the event.
func (d *Descriptor) execute(op string, actor *entities.Creature, build argsFunc) bool {
	env, err := d.runtime.ReserveEnv()
	if err != nil {
		log.Printf("CreatureEvent.%s: call stack overflow: %v", op, err)
		return false
	}
	defer d.runtime.ReleaseEnv(env)

	env.SetRealPos(actor.GetPosition())
	env.SetEventDesc(actor.GetName())

	return d.invoke(env, op, build(env))
}

func (d *Descriptor) invoke(env *script.Env, op string, args []script.Arg) bool {
	switch d.mode {
	case ModeBuffer:
		if err := d.runtime.RunBuffer(env, script.Prologue(args)+d.buffer); err != nil {
			log.Printf("CreatureEvent.%s: %s failed: %v", op, d.name, err)
			return true
		}
		return d.runtime.GlobalBool(script.ResultGlobal, true)

	case ModeCompiled:
		env.SetScriptID(d.entry)
		ok, err := d.runtime.Call(env, d.entry, args)
		if err != nil {
			log.Printf("CreatureEvent.%s: %s failed: %v", op, d.name, err)
			return false
		}
		return ok

	case ModeNotScripted:
		log.Printf("CreatureEvent.%s: %s has no script", op, d.name)
		return true
	}

	return true
}

func arg(name string, v script.Value) script.Arg {
	return script.Arg{Name: name, Value: v}
}

func creatureArg(env *script.Env, name string, c *entities.Creature) script.Arg {
	return arg(name, env.AddThing(c))
}

func thingArg(env *script.Env, name string, thing any) script.Arg {
	return arg(name, env.Thing(thing))
}

func positionArg(name string, pos entities.Position, stackpos int) script.Arg {
	return arg(name, script.PositionTable(pos, stackpos))
}

func creatureList(env *script.Env, creatures []*entities.Creature) script.List {
	list := make(script.List, 0, len(creatures))
	for _, c := range creatures {
		list = append(list, env.AddThing(c))
	}
	return list
}

func deathList(env *script.Env, entries entities.DeathList) script.List {
	list := make(script.List, 0, len(entries))
	for _, entry := range entries {
		if entry.IsCreatureKill() {
			list = append(list, env.AddThing(entry.Killer))
			continue
		}
		list = append(list, script.String(entry.KillerName))
	}
	return list
}
