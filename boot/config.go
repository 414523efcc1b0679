package boot

import (
	"log"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Parse executes a boot script and returns the boot record it describes.
//
// The script assigns any of the globals console, mem_size, stack_addr,
// stack_end, arena_lo, arena_hi and in_ipl; unassigned settings keep the
// DefaultInfo() values. src is anything starlark.ExecFileOptions accepts.
//
//	console = OS_CONSOLE_DEVHW1
//	mem_size = 24 * MB
//	stack_addr = MEM1_BASE + 0x400000
//	stack_end = stack_addr - 64 * KB
func Parse(filename string, src any) (info *Info, err error) {
	pred := starlark.StringDict{}
	for key, value := range Defines() {
		pred[key] = starlark.MakeUint(uint(value))
	}

	thread := starlark.Thread{
		Name: "boot",
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("boot: %v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		err = &ErrConfig{Key: filename, Err: err}
		return
	}

	info = DefaultInfo()

	for key, field := range map[string]*uint32{
		"console":    (*uint32)(&info.Console),
		"mem_size":   &info.MemorySize,
		"stack_addr": (*uint32)(&info.StackAddr),
		"stack_end":  (*uint32)(&info.StackEnd),
		"arena_lo":   (*uint32)(&info.ArenaLo),
		"arena_hi":   (*uint32)(&info.ArenaHi),
	} {
		err = uint32Of(dict, key, field)
		if err != nil {
			info = nil
			return
		}
	}

	if st_val, ok := dict["in_ipl"]; ok {
		st_bool, ok := st_val.(starlark.Bool)
		if !ok {
			info = nil
			err = &ErrConfig{Key: "in_ipl", Err: ErrBootType}
			return
		}
		info.InIPL = bool(st_bool)
	}

	err = info.Validate()
	if err != nil {
		info = nil
		return
	}

	return
}

// uint32Of stores the integer global key in value, if the script set it.
func uint32Of(dict starlark.StringDict, key string, value *uint32) (err error) {
	st_val, ok := dict[key]
	if !ok {
		return
	}

	st_int, ok := st_val.(starlark.Int)
	if !ok {
		err = &ErrConfig{Key: key, Err: ErrBootType}
		return
	}

	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 > math.MaxUint32 {
		err = &ErrConfig{Key: key, Err: ErrBootRange}
		return
	}

	*value = uint32(st_uint64)
	return
}
