// Package arena tracks the free memory arena of the console.
//
// The arena is a single contiguous region bounded by two fences. Allocators
// reserve memory by moving the low fence up or the high fence down; the
// region between the fences is the memory nobody has claimed yet. Fences only
// ever narrow the region, and they never cross.
package arena
