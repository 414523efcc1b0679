package osinit

// State of the sequencer.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_NOT_STARTED = State(0) // not-started
	STATE_RUNNING     = State(1) // running
	STATE_COMPLETE    = State(2) // complete
	STATE_FAILED      = State(3) // failed
)

// Status of a single subsystem.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_UNINITIALIZED = Status(0) // uninitialized
	STATUS_READY         = Status(1) // ready
)
