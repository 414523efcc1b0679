// Package boot describes the machine as the loader hands it to the OS.
package boot

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/revoos/arena"
	"github.com/ezrec/revoos/console"
	"github.com/ezrec/revoos/internal"
)

const (
	KB = 1024
	MB = 1024 * KB

	MEM1_BASE          = arena.Address(0x8000_0000) // Cached main memory.
	DEFAULT_MEM_SIZE   = 24 * MB
	DEFAULT_STACK_SIZE = 64 * KB
	DEFAULT_STACK_ADDR = MEM1_BASE + 0x40_0000

	ARENA_ALIGN = 32 // Default arena alignment, one cache line.
)

var _boot_defines = map[string]uint32{
	"KB":                 KB,
	"MB":                 MB,
	"MEM1_BASE":          uint32(MEM1_BASE),
	"DEFAULT_MEM_SIZE":   DEFAULT_MEM_SIZE,
	"DEFAULT_STACK_SIZE": DEFAULT_STACK_SIZE,
	"DEFAULT_STACK_ADDR": uint32(DEFAULT_STACK_ADDR),
	"ARENA_ALIGN":        ARENA_ALIGN,
}

// Info is the boot record.
type Info struct {
	Console    console.Type  // Hardware variant.
	MemorySize uint32        // Bytes of main memory at MEM1_BASE.
	StackAddr  arena.Address // Top of the boot stack. The stack grows down.
	StackEnd   arena.Address // Bottom of the boot stack.
	ArenaLo    arena.Address // Initial low arena fence, 0 for the default.
	ArenaHi    arena.Address // Initial high arena fence, 0 for the default.
	InIPL      bool          // Running under the boot loader.
}

// DefaultInfo returns the boot record of a retail console.
func DefaultInfo() *Info {
	return &Info{
		Console:    console.RETAIL,
		MemorySize: DEFAULT_MEM_SIZE,
		StackAddr:  DEFAULT_STACK_ADDR,
		StackEnd:   DEFAULT_STACK_ADDR - DEFAULT_STACK_SIZE,
	}
}

var _script_defines = func() map[string]uint32 {
	defines, err := internal.CollectDefines(maps.All(_boot_defines), console.Defines())
	if err != nil {
		panic(fmt.Sprintf("boot: %v", err))
	}
	return defines
}()

// Defines returns the names available to boot scripts, in name order.
func Defines() iter.Seq2[string, uint32] {
	return internal.SortedDefines(_script_defines)
}

// MemoryRegion is main memory.
func (info *Info) MemoryRegion() arena.Region {
	top := uint64(MEM1_BASE) + uint64(info.MemorySize)
	if top > uint64(^arena.Address(0)) {
		top = uint64(^arena.Address(0))
	}
	return arena.Region{Lo: MEM1_BASE, Hi: arena.Address(top)}
}

// StackRegion is the boot stack.
func (info *Info) StackRegion() arena.Region {
	return arena.Region{Lo: info.StackEnd, Hi: info.StackAddr}
}

// ArenaRegion is the initial arena, with defaults applied.
func (info *Info) ArenaRegion() arena.Region {
	r := arena.Region{Lo: info.ArenaLo, Hi: info.ArenaHi}

	if r.Lo == 0 {
		lo, ok := info.StackAddr.AlignUp(ARENA_ALIGN)
		if !ok {
			lo = info.StackAddr
		}
		r.Lo = lo
	}

	if r.Hi == 0 {
		r.Hi = info.MemoryRegion().Hi
	}

	return r
}

// Validate the boot record.
func (info *Info) Validate() (err error) {
	if !info.Console.Valid() {
		return &ErrConfig{Key: "console", Err: fmt.Errorf("%w: 0x%08x", console.ErrConsoleUnknown, uint32(info.Console))}
	}

	if info.MemorySize == 0 || uint64(MEM1_BASE)+uint64(info.MemorySize) > uint64(^arena.Address(0)) {
		return &ErrConfig{Key: "mem_size", Err: ErrBootRange}
	}

	mem := info.MemoryRegion()

	stack := info.StackRegion()
	if stack.Lo >= stack.Hi {
		return &ErrConfig{Key: "stack_end", Err: ErrBootOrder}
	}
	if !mem.Covers(stack) {
		return &ErrConfig{Key: "stack_addr", Err: ErrBootRange}
	}

	region := info.ArenaRegion()
	if region.Lo > region.Hi {
		return &ErrConfig{Key: "arena_lo", Err: ErrBootOrder}
	}
	if !mem.Covers(region) {
		return &ErrConfig{Key: "arena_hi", Err: ErrBootRange}
	}
	if region.Lo < stack.Hi && stack.Lo < region.Hi {
		return &ErrConfig{Key: "arena_lo", Err: ErrBootOverlap}
	}

	return
}
