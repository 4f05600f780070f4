// Package host adapts a terminal into a toolkit event source.
//
// The adapter owns a tcell screen and translates its decoded input
// events into event records the dispatch engine can match on. It
// implements session.Source, so a Terminal can drive Session.Run
// directly.
//
// Terminals only report key presses; key events surface under the
// key.down tag and key.up is never emitted by this host.
package host
