// Package osinit brings the OS subsystems up, once, in a fixed order.
//
// A Sequencer holds an ordered list of subsystems. Run initializes each of
// them in registration order and may only ever be called once; a failing
// initializer stops the sequence for good. Subsystems may name the
// subsystems they require, which must already be ready when their turn comes.
package osinit
