package osinit

import (
	"errors"

	"github.com/ezrec/revoos/translate"
)

var f = translate.From

var (
	ErrSequenceReentered   = errors.New(f("init sequence already run"))
	ErrSequenceStarted     = errors.New(f("init sequence started"))
	ErrSubsystemName       = errors.New(f("subsystem name invalid"))
	ErrSubsystemDuplicate  = errors.New(f("subsystem duplicated"))
	ErrSubsystemDependency = errors.New(f("subsystem dependency not ready"))
	ErrSubsystemUnknown    = errors.New(f("subsystem requirement unknown"))
)

// ErrSubsystem identifies the subsystem that failed to initialize.
type ErrSubsystem struct {
	Name string
	Err  error
}

func (err *ErrSubsystem) Error() string {
	return f("subsystem %v: %v", err.Name, err.Err)
}

func (err *ErrSubsystem) Unwrap() error {
	return err.Err
}

// ErrState reports a sequencer that was not in a state to accept the request.
type ErrState struct {
	State State
	Err   error
}

func (err *ErrState) Error() string {
	return f("sequencer %v: %v", err.State, err.Err)
}

func (err *ErrState) Unwrap() error {
	return err.Err
}
