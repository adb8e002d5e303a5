// Package value holds the generic TJS2 value tree.
//
// A Value is an immutable tagged union: Void, Bool, Int, Real, Str, Octet,
// Array or Dict. Dicts keep insertion order and unique keys; inserting an
// existing key replaces the value in place (last write wins, first position
// kept). The zero Value is Void.
//
// Trees are produced either directly through the constructors or by feeding
// events into a Builder, which implements Sink. Walk replays a tree as
// events, so any Sink (a Builder, the canonical text writer) can consume it.
package value
