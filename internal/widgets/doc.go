// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (buttons, checkboxes, selects, popup overlay compositor)
//
// Not allowed here:
// - key or mouse handling, table state transitions, or data derivation
package widgets
