package arena

import (
	"errors"

	"github.com/ezrec/revoos/translate"
)

var f = translate.From

var (
	ErrArenaCrossed   = errors.New(f("arena fences crossed"))
	ErrArenaWiden     = errors.New(f("arena widened"))
	ErrArenaAlign     = errors.New(f("arena alignment invalid"))
	ErrArenaExhausted = errors.New(f("arena exhausted"))
)

// ErrBound describes a rejected fence update. The arena is unchanged.
type ErrBound struct {
	Op     string  // Operation attempted.
	Addr   Address // Requested address.
	Region Region  // Arena bounds at the time of the request.
	Err    error
}

func (err *ErrBound) Error() string {
	return f("arena %v %v on %v: %v", err.Op, err.Addr, err.Region, err.Err)
}

func (err *ErrBound) Unwrap() error {
	return err.Err
}

// ErrAlloc describes a failed reservation. The arena is unchanged.
type ErrAlloc struct {
	Op     string // Operation attempted.
	Size   uint32 // Requested size in bytes.
	Align  uint32 // Requested alignment in bytes.
	Region Region // Arena bounds at the time of the request.
	Err    error
}

func (err *ErrAlloc) Error() string {
	return f("arena %v size 0x%x align %d on %v: %v", err.Op, err.Size, err.Align, err.Region, err.Err)
}

func (err *ErrAlloc) Unwrap() error {
	return err.Err
}
