// Package config loads declarative handler bindings from TOML or YAML
// files and registers them on a session.
//
// A binding names an event type tag, literal field values the event
// must carry, and a named action supplied by the application:
//
//	[[binding]]
//	event = "key.down"
//	action = "quit"
//	help = "Quit the application."
//	always_active = true
//	[binding.match]
//	key = 27
//
// Bindings are registered in file order, and registration order is
// dispatch priority, so catch-all bindings belong at the end of the
// file.
package config
