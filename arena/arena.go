package arena

import (
	"log"
	"math/bits"
	"sync"
)

// Arena tracks the low and high fences of the free memory arena.
//
// All methods are safe for concurrent use. Fence updates that would widen
// the arena or cross the fences are rejected and leave the arena unchanged.
type Arena struct {
	Verbose bool // If set, logs every fence movement.

	mutex sync.Mutex
	lo    Address
	hi    Address
}

// New creates an arena spanning region.
func New(region Region) (arena *Arena) {
	if region.Lo > region.Hi {
		panic("arena: region crossed")
	}

	arena = &Arena{
		lo: region.Lo,
		hi: region.Hi,
	}

	return
}

// Lo returns the low fence, the first free byte.
func (arena *Arena) Lo() Address {
	arena.mutex.Lock()
	defer arena.mutex.Unlock()

	return arena.lo
}

// Hi returns the high fence, one past the last free byte.
func (arena *Arena) Hi() Address {
	arena.mutex.Lock()
	defer arena.mutex.Unlock()

	return arena.hi
}

// Region returns both fences as a consistent snapshot.
func (arena *Arena) Region() Region {
	arena.mutex.Lock()
	defer arena.mutex.Unlock()

	return Region{Lo: arena.lo, Hi: arena.hi}
}

// SetLo moves the low fence up to addr.
// addr must lie within [Lo(), Hi()].
func (arena *Arena) SetLo(addr Address) (err error) {
	arena.mutex.Lock()
	defer arena.mutex.Unlock()

	switch {
	case addr < arena.lo:
		err = ErrArenaWiden
	case addr > arena.hi:
		err = ErrArenaCrossed
	}
	if err != nil {
		return &ErrBound{Op: "set lo", Addr: addr, Region: Region{Lo: arena.lo, Hi: arena.hi}, Err: err}
	}

	if arena.Verbose {
		log.Printf("arena: lo %v -> %v", arena.lo, addr)
	}

	arena.lo = addr

	return
}

// SetHi moves the high fence down to addr.
// addr must lie within [Lo(), Hi()].
func (arena *Arena) SetHi(addr Address) (err error) {
	arena.mutex.Lock()
	defer arena.mutex.Unlock()

	switch {
	case addr > arena.hi:
		err = ErrArenaWiden
	case addr < arena.lo:
		err = ErrArenaCrossed
	}
	if err != nil {
		return &ErrBound{Op: "set hi", Addr: addr, Region: Region{Lo: arena.lo, Hi: arena.hi}, Err: err}
	}

	if arena.Verbose {
		log.Printf("arena: hi %v -> %v", arena.hi, addr)
	}

	arena.hi = addr

	return
}

// AllocFromLo reserves size bytes at the bottom of the arena, aligned to
// align, and returns the start of the block. The low fence moves past it.
func (arena *Arena) AllocFromLo(size uint32, align uint32) (addr Address, err error) {
	arena.mutex.Lock()
	defer arena.mutex.Unlock()

	fail := func(e error) error {
		return &ErrAlloc{Op: "alloc lo", Size: size, Align: align, Region: Region{Lo: arena.lo, Hi: arena.hi}, Err: e}
	}

	if !validAlign(align) {
		err = fail(ErrArenaAlign)
		return
	}

	start, ok := arena.lo.AlignUp(align)
	if !ok || start > arena.hi || uint32(arena.hi-start) < size {
		err = fail(ErrArenaExhausted)
		return
	}

	end := start + Address(size)

	if arena.Verbose {
		log.Printf("arena: alloc lo %v size 0x%x", start, size)
	}

	arena.lo = end
	addr = start

	return
}

// AllocFromHi reserves size bytes at the top of the arena, aligned to align,
// and returns the start of the block. The high fence moves down to it.
func (arena *Arena) AllocFromHi(size uint32, align uint32) (addr Address, err error) {
	arena.mutex.Lock()
	defer arena.mutex.Unlock()

	fail := func(e error) error {
		return &ErrAlloc{Op: "alloc hi", Size: size, Align: align, Region: Region{Lo: arena.lo, Hi: arena.hi}, Err: e}
	}

	if !validAlign(align) {
		err = fail(ErrArenaAlign)
		return
	}

	if uint32(arena.hi) < size {
		err = fail(ErrArenaExhausted)
		return
	}

	start := (arena.hi - Address(size)).AlignDown(align)
	if start < arena.lo {
		err = fail(ErrArenaExhausted)
		return
	}

	if arena.Verbose {
		log.Printf("arena: alloc hi %v size 0x%x", start, size)
	}

	arena.hi = start
	addr = start

	return
}

func validAlign(align uint32) bool {
	return bits.OnesCount32(align) == 1
}
