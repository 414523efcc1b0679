// Package internal holds helpers shared by the revoos packages.
package internal

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/revoos/translate"
)

var ErrDefineConflict = errors.New(translate.From("define conflicts"))

// CollectDefines merges named constants from several sources.
// A name may appear more than once only with the same value.
func CollectDefines(seqs ...iter.Seq2[string, uint32]) (defines map[string]uint32, err error) {
	defines = make(map[string]uint32)
	for _, seq := range seqs {
		for name, value := range seq {
			old, ok := defines[name]
			if ok && old != value {
				err = fmt.Errorf("%w: %v is 0x%x and 0x%x", ErrDefineConflict, name, old, value)
				defines = nil
				return
			}
			defines[name] = value
		}
	}
	return
}

// SortedDefines iterates over defines in name order.
func SortedDefines(defines map[string]uint32) iter.Seq2[string, uint32] {
	return func(yield func(name string, value uint32) bool) {
		for _, name := range slices.Sorted(maps.Keys(defines)) {
			if !yield(name, defines[name]) {
				return
			}
		}
	}
}
