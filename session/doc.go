// Package session implements the event dispatch engine: the handler
// registry, the first-match-wins matching algorithm, and the concrete
// runnable session that drives it.
//
// A Manager owns an ordered registry of handlers per event type tag.
// Dispatch is a linear scan in registration order: the first handler
// whose full filter conjunction passes has its actions invoked and the
// scan stops, so registration order is dispatch priority and catch-all
// handlers must be registered last.
//
// Handler invocation is gated on the owning session's run state. A
// paused session suppresses its handlers, except those registered as
// always-active (typically quit or help reactions that must keep
// working while paused).
//
// Concrete session types embed *Manager and may override HandleEvent,
// calling the embedded default scan inside their own logic:
//
//	type Menu struct {
//		*session.Manager
//	}
//
//	func (m *Menu) HandleEvent(ev event.Event) bool {
//		if m.Manager.HandleEvent(ev) {
//			return true
//		}
//		// fall back to menu-specific behavior
//		return false
//	}
//
// Manager and Session are not safe for concurrent use. Dispatch and
// registry mutation are expected on the same goroutine that drives the
// event loop; hosts that need cross-goroutine registration must add
// their own synchronization.
package session
