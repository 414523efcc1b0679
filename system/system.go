// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package system is the OS entry point: it owns the boot record, the
// simulated hardware, the init sequence and the memory arena.
package system

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ezrec/revoos/arena"
	"github.com/ezrec/revoos/boot"
	"github.com/ezrec/revoos/console"
	"github.com/ezrec/revoos/osinit"
)

// Init sequence steps, in order.
const (
	SUBSYSTEM_BOOT       = "boot"
	SUBSYSTEM_PS         = "ps"
	SUBSYSTEM_FPR        = "fpr"
	SUBSYSTEM_CACHE      = "cache"
	SUBSYSTEM_CONTEXT    = "context"
	SUBSYSTEM_INTERRUPT  = "interrupt"
	SUBSYSTEM_SYSCALL    = "syscall"
	SUBSYSTEM_MODULE     = "module"
	SUBSYSTEM_AUDIO      = "audio"
	SUBSYSTEM_MEMPROTECT = "memprotect"
	SUBSYSTEM_ARENA      = "arena"
)

// System state. Boot record + hardware + init sequence + arena.
type System struct {
	Verbose   bool              // If set, enables verbose logging.
	Hardware  Hardware          // Simulated hardware.
	Sequencer *osinit.Sequencer // Init sequence. Steps may be appended before Init.
	Now       func() time.Time  // Clock used for the start time.

	mutex     sync.Mutex // Guards Hardware after Init.
	boot      boot.Info
	arena     *arena.Arena
	startTime time.Time
	inIPL     bool
}

// NewSystem creates a system for the boot record and registers the default
// init sequence.
func NewSystem(info *boot.Info) (sys *System, err error) {
	err = info.Validate()
	if err != nil {
		return
	}

	sys = &System{
		Sequencer: &osinit.Sequencer{},
		Now:       time.Now,
		boot:      *info,
	}

	hw := &sys.Hardware

	steps := []osinit.Subsystem{
		{Name: SUBSYSTEM_BOOT, Init: sys.initBoot},
		{Name: SUBSYSTEM_PS, Init: hw.initPS},
		{Name: SUBSYSTEM_FPR, Requires: []string{SUBSYSTEM_PS}, Init: hw.initFPR},
		{Name: SUBSYSTEM_CACHE, Init: hw.initCache},
		{Name: SUBSYSTEM_CONTEXT, Requires: []string{SUBSYSTEM_FPR}, Init: hw.initContext},
		{Name: SUBSYSTEM_INTERRUPT, Requires: []string{SUBSYSTEM_CONTEXT}, Init: hw.initInterrupt},
		{Name: SUBSYSTEM_SYSCALL, Requires: []string{SUBSYSTEM_INTERRUPT}, Init: hw.initSyscall},
		{Name: SUBSYSTEM_MODULE, Requires: []string{SUBSYSTEM_CACHE}, Init: hw.initModule},
		{Name: SUBSYSTEM_AUDIO, Requires: []string{SUBSYSTEM_INTERRUPT}, Init: hw.initAudio},
		{Name: SUBSYSTEM_MEMPROTECT, Requires: []string{SUBSYSTEM_INTERRUPT}, Init: sys.initMemoryProtection},
		{Name: SUBSYSTEM_ARENA, Requires: []string{SUBSYSTEM_BOOT, SUBSYSTEM_MEMPROTECT}, Init: sys.initArena},
	}

	for _, step := range steps {
		err = sys.Sequencer.Add(step)
		if err != nil {
			panic(fmt.Sprintf("system: %v", err))
		}
	}

	return
}

// Init runs the init sequence. It may only be called once.
func (sys *System) Init() (err error) {
	sys.Sequencer.Verbose = sys.Verbose
	sys.Hardware.Verbose = sys.Verbose

	return sys.Sequencer.Run()
}

func (sys *System) initBoot() (err error) {
	sys.startTime = sys.Now()
	sys.inIPL = sys.boot.InIPL

	if sys.Verbose {
		log.Printf("system: %v console, started %v, ipl %v", sys.boot.Console, sys.startTime, sys.inIPL)
	}

	return
}

func (sys *System) initMemoryProtection() (err error) {
	return sys.Hardware.protect(sys.boot.StackRegion())
}

func (sys *System) initArena() (err error) {
	region := sys.boot.ArenaRegion()
	if sys.Hardware.IsProtected(region) {
		return fmt.Errorf("%w: %v", ErrArenaProtected, region)
	}

	sys.arena = arena.New(region)
	sys.arena.Verbose = sys.Verbose

	if sys.Verbose {
		log.Printf("system: arena %v", region)
	}

	return
}

// Arena returns the memory arena. Only available after Init.
func (sys *System) Arena() (a *arena.Arena, err error) {
	if !sys.Sequencer.Done() {
		err = ErrNotInitialized
		return
	}

	a = sys.arena
	return
}

// BootInfo returns a copy of the boot record.
func (sys *System) BootInfo() boot.Info {
	return sys.boot
}

// ConsoleType of the running hardware.
func (sys *System) ConsoleType() console.Type {
	return sys.boot.Console
}

// StackRegion is the boot stack.
func (sys *System) StackRegion() arena.Region {
	return sys.boot.StackRegion()
}

// StartTime is the time the init sequence began. Zero before Init.
func (sys *System) StartTime() (t time.Time) {
	if sys.Sequencer.Status(SUBSYSTEM_BOOT) == osinit.STATUS_READY {
		t = sys.startTime
	}
	return
}

// InIPL is true if the system booted under the boot loader.
// Always false before Init.
func (sys *System) InIPL() (ok bool) {
	if sys.Sequencer.Status(SUBSYSTEM_BOOT) == osinit.STATUS_READY {
		ok = sys.inIPL
	}
	return
}

// StopAudioSystem halts the audio DSP, ahead of a reset.
func (sys *System) StopAudioSystem() (err error) {
	if sys.Sequencer.Status(SUBSYSTEM_AUDIO) != osinit.STATUS_READY {
		err = ErrNotInitialized
		return
	}

	sys.mutex.Lock()
	defer sys.mutex.Unlock()

	return sys.Hardware.stopAudio()
}

// AudioRunning is true while the audio DSP is running.
func (sys *System) AudioRunning() bool {
	sys.mutex.Lock()
	defer sys.mutex.Unlock()

	return sys.Hardware.Audio
}
