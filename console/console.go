// Package console identifies the hardware the firmware is running on.
package console

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ezrec/revoos/translate"
)

var f = translate.From

var ErrConsoleUnknown = errors.New(f("console type unknown"))

// Type is the console variant code reported by the boot record.
type Type uint32

const (
	RETAIL      = Type(0x0000_0000) // Retail unit, first revision.
	RETAIL1     = Type(0x0000_0001)
	RETAIL2     = Type(0x0000_0002)
	RETAIL3     = Type(0x0000_0003)
	RETAIL4     = Type(0x0000_0004)
	EMULATOR    = Type(0x1000_0000) // Development hardware, emulated.
	PC_EMULATOR = Type(0x1000_0001)
	ARTHUR      = Type(0x1000_0002)
	MINNOW      = Type(0x1000_0003)
	DEVHW1      = Type(0x1000_0004)
	DEVHW2      = Type(0x1000_0005)
	DEVHW3      = Type(0x1000_0006)
	DEVHW4      = Type(0x1000_0007)
	TDEVKIT     = Type(0x2000_0000) // Test development kit.

	DEVELOPMENT = EMULATOR
	DEVKIT      = EMULATOR
)

const (
	TYPE_CLASS_MASK = uint32(0xf000_0000) // Classification bits of a code.
)

var _type_name = map[Type]string{
	RETAIL:      "retail",
	RETAIL1:     "retail1",
	RETAIL2:     "retail2",
	RETAIL3:     "retail3",
	RETAIL4:     "retail4",
	EMULATOR:    "emulator",
	PC_EMULATOR: "pc-emulator",
	ARTHUR:      "arthur",
	MINNOW:      "minnow",
	DEVHW1:      "devhw1",
	DEVHW2:      "devhw2",
	DEVHW3:      "devhw3",
	DEVHW4:      "devhw4",
	TDEVKIT:     "tdevkit",
}

// Firmware names, aliases included.
var _type_defines = []struct {
	name  string
	value Type
}{
	{"OS_CONSOLE_RETAIL", RETAIL},
	{"OS_CONSOLE_RETAIL1", RETAIL1},
	{"OS_CONSOLE_RETAIL2", RETAIL2},
	{"OS_CONSOLE_RETAIL3", RETAIL3},
	{"OS_CONSOLE_RETAIL4", RETAIL4},
	{"OS_CONSOLE_EMULATOR", EMULATOR},
	{"OS_CONSOLE_DEVELOPMENT", DEVELOPMENT},
	{"OS_CONSOLE_DEVKIT", DEVKIT},
	{"OS_CONSOLE_PC_EMULATOR", PC_EMULATOR},
	{"OS_CONSOLE_ARTHUR", ARTHUR},
	{"OS_CONSOLE_MINNOW", MINNOW},
	{"OS_CONSOLE_DEVHW1", DEVHW1},
	{"OS_CONSOLE_DEVHW2", DEVHW2},
	{"OS_CONSOLE_DEVHW3", DEVHW3},
	{"OS_CONSOLE_DEVHW4", DEVHW4},
	{"OS_CONSOLE_TDEVKIT", TDEVKIT},
}

// Parse a raw console code. Unknown codes are returned as-is, with an error.
func Parse(code uint32) (ct Type, err error) {
	ct = Type(code)
	if !ct.Valid() {
		err = fmt.Errorf("%w: 0x%08x", ErrConsoleUnknown, code)
	}
	return
}

// Valid is true if the code is one of the known variants.
func (ct Type) Valid() (ok bool) {
	_, ok = _type_name[ct]
	return
}

func (ct Type) String() string {
	name, ok := _type_name[ct]
	if !ok {
		return fmt.Sprintf("Type(0x%08x)", uint32(ct))
	}
	return name
}

// Class of the console. Unknown codes have no class.
func (ct Type) Class() Class {
	if !ct.Valid() {
		return CLASS_UNKNOWN
	}

	switch uint32(ct) & TYPE_CLASS_MASK {
	case 0x0000_0000:
		return CLASS_RETAIL
	case 0x1000_0000:
		return CLASS_DEVELOPMENT
	case 0x2000_0000:
		return CLASS_TDEV
	}
	return CLASS_UNKNOWN
}

// IsRetail is true for shipping hardware.
func (ct Type) IsRetail() bool {
	return ct.Class() == CLASS_RETAIL
}

// IsDevelopment is true for development hardware and emulators.
func (ct Type) IsDevelopment() bool {
	return ct.Class() == CLASS_DEVELOPMENT
}

// Defines returns the firmware names of every console code.
func Defines() iter.Seq2[string, uint32] {
	return func(yield func(name string, value uint32) bool) {
		for _, def := range _type_defines {
			if !yield(def.name, uint32(def.value)) {
				return
			}
		}
	}
}
