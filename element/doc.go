// Package element provides leaf widgets built on the session dispatch
// engine. Elements hold data and register declarative key handlers;
// they contain no dispatch logic of their own.
//
// Each element owns its own handler registry, gated on the parent
// session's run state, and a parent forwards events to it explicitly:
//
//	box := element.NewTextbox(sess, "Name")
//	sess.AddKeydownHandler(session.Act(session.ActionFunc(
//		func(_ *session.Handler, ev event.Event) any {
//			return box.HandleEvent(ev)
//		})), nil)
//
// Rendering and speech output are outside this package; elements only
// maintain state and expose it for whatever presentation layer the
// application uses.
package element
