// Package script bridges Lua functions into handler actions, so users
// can supply reactions without recompiling the application:
//
//	L := lua.NewState()
//	defer L.Close()
//	act, err := script.LoadAction(L, `return function(ev) return ev.rune end`)
//	if err != nil { ... }
//	sess.AddKeydownHandler(session.Act(act), nil)
//
// The event is marshalled into a Lua table with a "type" entry plus
// one entry per event field; the function's return value is converted
// back to a Go value and becomes the action result.
//
// Lua states are not goroutine-safe; all actions sharing a state must
// run on the goroutine that drives dispatch, which is where the engine
// invokes them anyway.
package script
