package system

import (
	"testing"

	"github.com/ezrec/revoos/arena"
	"github.com/stretchr/testify/assert"
)

func TestHardware_Prerequisites(t *testing.T) {
	assert := assert.New(t)

	hw := &Hardware{}
	assert.ErrorIs(hw.initFPR(), ErrHardwareState)
	assert.ErrorIs(hw.initContext(), ErrHardwareState)
	assert.ErrorIs(hw.initInterrupt(), ErrHardwareState)
	assert.ErrorIs(hw.initModule(), ErrHardwareState)
	assert.ErrorIs(hw.protect(arena.Region{Lo: 0, Hi: 4}), ErrHardwareState)
}

func TestHardware_Protect(t *testing.T) {
	assert := assert.New(t)

	hw := &Hardware{Interrupts: true}
	assert.ErrorIs(hw.protect(arena.Region{Lo: 0x100, Hi: 0x100}), ErrProtectEmpty)
	assert.NoError(hw.protect(arena.Region{Lo: 0x1000, Hi: 0x2000}))

	assert.True(hw.IsProtected(arena.Region{Lo: 0x1fff, Hi: 0x3000}))
	assert.True(hw.IsProtected(arena.Region{Lo: 0x0000, Hi: 0x1001}))
	assert.False(hw.IsProtected(arena.Region{Lo: 0x2000, Hi: 0x3000}))
	assert.False(hw.IsProtected(arena.Region{Lo: 0x0000, Hi: 0x1000}))
}
