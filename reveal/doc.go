// Package reveal animates a sampled path one coordinate per tick.
//
// A Sequencer owns at most one running reveal. Starting a new one cancels
// the previous run (cancel-and-replace) and waits for it to unwind, so frames
// from two reveals never interleave. Timing goes through a Clock so tests can
// fire every tick by hand.
package reveal
