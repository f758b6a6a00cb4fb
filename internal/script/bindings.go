package script

import (
	"github.com/Shopify/go-lua"

	"github.com/KirkDiggler/creaturescripts/internal/entities"
)

// registerBindings exposes read-only accessors for handles registered on the
// reserved slots
func (r *LuaRuntime) registerBindings() {
	r.state.PushGlobalTable()
	lua.SetFunctions(r.state, []lua.RegistryFunction{
		{Name: "getCreatureName", Function: r.getCreatureName},
		{Name: "isPlayer", Function: r.isPlayer},
		{Name: "getThingName", Function: r.getThingName},
		{Name: "getThingPosition", Function: r.getThingPosition},
	}, 0)
	r.state.Pop(1)
}

func (r *LuaRuntime) creature(l *lua.State) *entities.Creature {
	thing, ok := r.lookup(Handle(lua.CheckInteger(l, 1)))
	if !ok {
		return nil
	}
	creature, _ := thing.(*entities.Creature)
	return creature
}

func (r *LuaRuntime) getCreatureName(l *lua.State) int {
	creature := r.creature(l)
	if creature == nil {
		l.PushBoolean(false)
		return 1
	}
	l.PushString(creature.Name)
	return 1
}

func (r *LuaRuntime) isPlayer(l *lua.State) int {
	creature := r.creature(l)
	l.PushBoolean(creature != nil && creature.IsPlayer())
	return 1
}

func (r *LuaRuntime) thing(l *lua.State) entities.Thing {
	thing, ok := r.lookup(Handle(lua.CheckInteger(l, 1)))
	if !ok {
		return nil
	}
	t, _ := thing.(entities.Thing)
	return t
}

func (r *LuaRuntime) getThingName(l *lua.State) int {
	thing := r.thing(l)
	if thing == nil {
		l.PushBoolean(false)
		return 1
	}
	l.PushString(thing.GetName())
	return 1
}

func (r *LuaRuntime) getThingPosition(l *lua.State) int {
	thing := r.thing(l)
	if thing == nil {
		l.PushBoolean(false)
		return 1
	}
	push(l, PositionTable(thing.GetPosition(), 0))
	return 1
}
