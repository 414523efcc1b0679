package arena

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArena_Scenario(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0x1000, Hi: 0x9000})

	assert.NoError(arena.SetLo(0x2000))
	assert.Equal(Region{Lo: 0x2000, Hi: 0x9000}, arena.Region())

	assert.NoError(arena.SetHi(0x8000))
	assert.Equal(Region{Lo: 0x2000, Hi: 0x8000}, arena.Region())

	assert.Equal(Address(0x2000), arena.Lo())
	assert.Equal(Address(0x8000), arena.Hi())
}

func TestArena_ReadAfterWrite(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0x1000, Hi: 0x9000})

	for _, addr := range []Address{0x1000, 0x1004, 0x3000, 0x3000} {
		assert.NoError(arena.SetLo(addr))
		assert.Equal(addr, arena.Lo())
	}

	for _, addr := range []Address{0x9000, 0x8ffc, 0x4000, 0x3000} {
		assert.NoError(arena.SetHi(addr))
		assert.Equal(addr, arena.Hi())
	}

	assert.True(arena.Region().Empty())
}

func TestArena_SetLo_Crossed(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0x1000, Hi: 0x9000})

	err := arena.SetLo(0x9500)
	assert.ErrorIs(err, ErrArenaCrossed)

	var bound *ErrBound
	assert.True(errors.As(err, &bound))
	assert.Equal(Address(0x9500), bound.Addr)
	assert.Equal(Region{Lo: 0x1000, Hi: 0x9000}, bound.Region)

	// Unchanged.
	assert.Equal(Region{Lo: 0x1000, Hi: 0x9000}, arena.Region())
}

func TestArena_SetHi_Crossed(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0x1000, Hi: 0x9000})

	assert.ErrorIs(arena.SetHi(0x0800), ErrArenaCrossed)
	assert.Equal(Region{Lo: 0x1000, Hi: 0x9000}, arena.Region())
}

func TestArena_Widen(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0x1000, Hi: 0x9000})

	assert.ErrorIs(arena.SetLo(0x0fff), ErrArenaWiden)
	assert.ErrorIs(arena.SetHi(0x9001), ErrArenaWiden)
	assert.Equal(Region{Lo: 0x1000, Hi: 0x9000}, arena.Region())
}

func TestArena_RandomNarrowing(t *testing.T) {
	assert := assert.New(t)

	rands := rand.New(rand.NewSource(1))
	arena := New(Region{Lo: 0x80000000, Hi: 0x81800000})

	for n := 0; n < 10000; n++ {
		addr := Address(0x80000000 + rands.Int63n(0x01800001))
		var err error
		if rands.Intn(2) == 0 {
			err = arena.SetLo(addr)
		} else {
			err = arena.SetHi(addr)
		}
		if err != nil {
			assert.True(errors.Is(err, ErrArenaCrossed) || errors.Is(err, ErrArenaWiden))
		}
		r := arena.Region()
		assert.LessOrEqual(r.Lo, r.Hi)
	}
}

func TestArena_AllocFromLo(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0x1004, Hi: 0x2000})

	addr, err := arena.AllocFromLo(0x100, 32)
	assert.NoError(err)
	assert.Equal(Address(0x1020), addr)
	assert.Equal(Address(0x1120), arena.Lo())

	addr, err = arena.AllocFromLo(0xee0, 32)
	assert.NoError(err)
	assert.Equal(Address(0x1120), addr)
	assert.Equal(Address(0x2000), arena.Lo())

	_, err = arena.AllocFromLo(1, 1)
	assert.ErrorIs(err, ErrArenaExhausted)
	assert.Equal(Region{Lo: 0x2000, Hi: 0x2000}, arena.Region())
}

func TestArena_AllocFromHi(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0x1000, Hi: 0x2010})

	addr, err := arena.AllocFromHi(0x100, 32)
	assert.NoError(err)
	assert.Equal(Address(0x1f00), addr)
	assert.Equal(Address(0x1f00), arena.Hi())

	_, err = arena.AllocFromHi(0x1000, 32)
	assert.ErrorIs(err, ErrArenaExhausted)
	assert.Equal(Region{Lo: 0x1000, Hi: 0x1f00}, arena.Region())

	addr, err = arena.AllocFromHi(0xf00, 32)
	assert.NoError(err)
	assert.Equal(Address(0x1000), addr)
	assert.True(arena.Region().Empty())
}

func TestArena_AllocFromHi_Underflow(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0, Hi: 0x10})

	_, err := arena.AllocFromHi(0x20, 4)
	assert.ErrorIs(err, ErrArenaExhausted)
}

func TestArena_AllocAlign(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0x1000, Hi: 0x2000})

	for _, align := range []uint32{0, 3, 24, 0xffffffff} {
		_, err := arena.AllocFromLo(16, align)
		assert.ErrorIs(err, ErrArenaAlign)
		_, err = arena.AllocFromHi(16, align)
		assert.ErrorIs(err, ErrArenaAlign)
	}

	assert.Equal(Region{Lo: 0x1000, Hi: 0x2000}, arena.Region())
}

func TestArena_Concurrent(t *testing.T) {
	assert := assert.New(t)

	arena := New(Region{Lo: 0x0000, Hi: 0x10000})

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func(fromLo bool) {
			defer wg.Done()
			for range 64 {
				if fromLo {
					arena.AllocFromLo(32, 32)
				} else {
					arena.AllocFromHi(32, 32)
				}
			}
		}(n%2 == 0)
	}
	wg.Wait()

	r := arena.Region()
	assert.Equal(uint32(0x10000-8*64*32), r.Size())
	assert.LessOrEqual(r.Lo, r.Hi)
}

func TestNew_Crossed(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { New(Region{Lo: 2, Hi: 1}) })
}
