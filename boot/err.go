package boot

import (
	"errors"

	"github.com/ezrec/revoos/translate"
)

var f = translate.From

var (
	ErrBootRange   = errors.New(f("outside main memory"))
	ErrBootOrder   = errors.New(f("bounds out of order"))
	ErrBootOverlap = errors.New(f("overlaps the stack"))
	ErrBootType    = errors.New(f("wrong type"))
)

// ErrConfig identifies the boot setting that was rejected.
type ErrConfig struct {
	Key string
	Err error
}

func (err *ErrConfig) Error() string {
	return f("boot %v: %v", err.Key, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
