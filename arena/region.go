package arena

import (
	"fmt"
)

// Address is a 32-bit console memory address.
type Address uint32

func (a Address) String() string {
	return fmt.Sprintf("0x%08x", uint32(a))
}

// AlignUp rounds the address up to align, which must be a power of two.
// ok is false if the result does not fit in an Address.
func (a Address) AlignUp(align uint32) (aligned Address, ok bool) {
	mask := uint64(align) - 1
	up := (uint64(a) + mask) &^ mask
	if up > uint64(^Address(0)) {
		return
	}
	return Address(up), true
}

// AlignDown rounds the address down to align, which must be a power of two.
func (a Address) AlignDown(align uint32) Address {
	return a &^ Address(align-1)
}

// Region is the half-open address range [Lo, Hi).
type Region struct {
	Lo Address // First byte in the region.
	Hi Address // One past the last byte in the region.
}

// NewRegion creates a region, rejecting crossed bounds.
func NewRegion(lo, hi Address) (r Region, err error) {
	if lo > hi {
		err = &ErrBound{Op: "region", Addr: lo, Region: Region{Lo: lo, Hi: hi}, Err: ErrArenaCrossed}
		return
	}

	r = Region{Lo: lo, Hi: hi}
	return
}

// Size in bytes.
func (r Region) Size() uint32 {
	if r.Hi < r.Lo {
		return 0
	}
	return uint32(r.Hi - r.Lo)
}

// Empty is true if the region holds no bytes.
func (r Region) Empty() bool {
	return r.Size() == 0
}

// Contains reports whether the address lies inside the region.
func (r Region) Contains(a Address) bool {
	return a >= r.Lo && a < r.Hi
}

// Covers reports whether other lies entirely inside the region.
func (r Region) Covers(other Region) bool {
	return other.Lo >= r.Lo && other.Hi <= r.Hi && other.Lo <= other.Hi
}

func (r Region) String() string {
	return fmt.Sprintf("[%v, %v)", r.Lo, r.Hi)
}
