// Package widgets contains dumb render primitives for the score keeper.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, lists, popup overlay, charts, tables)
//
// Not allowed here:
// - key handling, session state, or mode transitions
package widgets
