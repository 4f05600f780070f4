package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/sightless-ui/sightless/event"
	"github.com/sightless-ui/sightless/session"
)

// ErrNotAFunction is returned when an action script does not evaluate
// to a Lua function.
var ErrNotAFunction = errors.New("script did not return a function")

// Action wraps a Lua function as a session action.
type Action struct {
	state *lua.LState
	fn    *lua.LFunction
}

// NewAction adapts a Lua function owned by L into an action.
func NewAction(L *lua.LState, fn *lua.LFunction) *Action {
	return &Action{state: L, fn: fn}
}

// LoadAction evaluates a Lua chunk that returns a function and wraps
// it as an action.
func LoadAction(L *lua.LState, code string) (*Action, error) {
	if err := L.DoString(code); err != nil {
		return nil, fmt.Errorf("loading action script: %w", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	fn, ok := ret.(*lua.LFunction)
	if !ok {
		return nil, ErrNotAFunction
	}
	return NewAction(L, fn), nil
}

// Invoke implements session.Action. The Lua function receives the
// event as a table; a Lua error becomes the action's result value.
func (a *Action) Invoke(_ *session.Handler, ev event.Event) any {
	if a.state == nil || a.fn == nil {
		return nil
	}
	err := a.state.CallByParam(lua.P{
		Fn:      a.fn,
		NRet:    1,
		Protect: true,
	}, eventToTable(a.state, ev))
	if err != nil {
		return fmt.Errorf("lua action: %w", err)
	}
	ret := a.state.Get(-1)
	a.state.Pop(1)
	return toGoValue(ret)
}

// eventToTable marshals an event into a Lua table. The type tag is
// stored under "type"; each event field is stored under its own name.
func eventToTable(L *lua.LState, ev event.Event) *lua.LTable {
	t := L.NewTable()
	if ev == nil {
		return t
	}
	t.RawSetString("type", lua.LString(ev.Type()))

	type fielder interface {
		Fields() map[string]any
	}
	if f, ok := ev.(fielder); ok {
		for name, v := range f.Fields() {
			t.RawSetString(name, toLuaValue(L, v))
		}
	}
	return t
}
