// Package game tracks a four player session of Doppelkopf: the roster, the
// open round with each player's declared events, and the scoring policy that
// folds a committed round into cumulative scores.
//
// Nothing in here knows about terminals or key presses.
package game
