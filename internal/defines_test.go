package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectDefines(t *testing.T) {
	assert := assert.New(t)

	defines, err := CollectDefines(
		maps.All(map[string]uint32{"KB": 1024, "MEM1_BASE": 0x8000_0000}),
		maps.All(map[string]uint32{"OS_CONSOLE_DEVKIT": 0x1000_0000, "KB": 1024}),
	)
	assert.NoError(err)
	assert.Equal(map[string]uint32{
		"KB":                1024,
		"MEM1_BASE":         0x8000_0000,
		"OS_CONSOLE_DEVKIT": 0x1000_0000,
	}, defines)
}

func TestCollectDefines_Conflict(t *testing.T) {
	assert := assert.New(t)

	defines, err := CollectDefines(
		maps.All(map[string]uint32{"KB": 1024}),
		maps.All(map[string]uint32{"KB": 1000}),
	)
	assert.ErrorIs(err, ErrDefineConflict)
	assert.Nil(defines)
}

func TestSortedDefines(t *testing.T) {
	assert := assert.New(t)

	var names []string
	for name := range SortedDefines(map[string]uint32{"MB": 1, "KB": 2, "ARENA_ALIGN": 3}) {
		names = append(names, name)
		if name == "KB" {
			break
		}
	}
	assert.Equal([]string{"ARENA_ALIGN", "KB"}, names)
}
