// Package render writes values in canonical TJS2 form.
//
// Canonical form is compact and deterministic: containers always carry the
// const qualifier, pairs are written as "key"=>value, elements are separated
// by a bare comma, and dict entries keep insertion order. Reals always show a
// fractional part or an exponent so they read back as reals.
package render
