package system

import (
	"fmt"
	"log"

	"github.com/ezrec/revoos/arena"
)

const (
	SYSCALL_VECTOR     = arena.Address(0x8000_0c00) // System call exception vector.
	INTERRUPT_MASK_ALL = uint32(0xffff_ffff)        // Every interrupt source masked.
)

// Hardware is the simulated processor and peripheral state brought up by
// the init sequence.
type Hardware struct {
	Verbose bool // If set, logs each subsystem as it comes up.

	PairedSingle  bool          // Paired-single floating point enabled.
	FPR           [32]float64   // Floating point registers.
	FPRReady      bool          // Floating point registers cleared.
	ICache        bool          // Instruction cache enabled.
	DCache        bool          // Data cache enabled.
	Context       bool          // Default exception context installed.
	InterruptMask uint32        // Masked interrupt sources.
	Interrupts    bool          // External interrupts enabled.
	SyscallVector arena.Address // Installed system call handler, 0 if none.
	Modules       []string      // Loaded relocatable modules.
	ModulesReady  bool          // Module list initialized.
	Audio         bool          // Audio DSP running.
	Protected     []arena.Region
}

func (hw *Hardware) logf(format string, args ...any) {
	if hw.Verbose {
		log.Printf("hw: "+format, args...)
	}
}

func (hw *Hardware) initPS() (err error) {
	hw.PairedSingle = true
	hw.logf("paired-single enabled")
	return
}

func (hw *Hardware) initFPR() (err error) {
	if !hw.PairedSingle {
		return fmt.Errorf("%w: paired-single", ErrHardwareState)
	}
	clear(hw.FPR[:])
	hw.FPRReady = true
	hw.logf("fpr cleared")
	return
}

func (hw *Hardware) initCache() (err error) {
	hw.ICache = true
	hw.DCache = true
	hw.logf("caches enabled")
	return
}

func (hw *Hardware) initContext() (err error) {
	if !hw.FPRReady {
		return fmt.Errorf("%w: fpr", ErrHardwareState)
	}
	hw.Context = true
	hw.logf("exception context installed")
	return
}

func (hw *Hardware) initInterrupt() (err error) {
	if !hw.Context {
		return fmt.Errorf("%w: context", ErrHardwareState)
	}
	// Sources stay masked until their drivers install handlers.
	hw.InterruptMask = INTERRUPT_MASK_ALL
	hw.Interrupts = true
	hw.logf("interrupts enabled, mask 0x%08x", hw.InterruptMask)
	return
}

func (hw *Hardware) initSyscall() (err error) {
	hw.SyscallVector = SYSCALL_VECTOR
	hw.logf("syscall vector %v", hw.SyscallVector)
	return
}

func (hw *Hardware) initModule() (err error) {
	if !hw.ICache {
		return fmt.Errorf("%w: cache", ErrHardwareState)
	}
	hw.Modules = []string{}
	hw.ModulesReady = true
	hw.logf("module list ready")
	return
}

func (hw *Hardware) initAudio() (err error) {
	hw.Audio = true
	hw.logf("audio started")
	return
}

func (hw *Hardware) stopAudio() (err error) {
	if !hw.Audio {
		return ErrAudioStopped
	}
	hw.Audio = false
	hw.logf("audio stopped")
	return
}

// protect makes region inaccessible to allocations.
func (hw *Hardware) protect(region arena.Region) (err error) {
	if !hw.Interrupts {
		return fmt.Errorf("%w: interrupt", ErrHardwareState)
	}
	if region.Empty() {
		return fmt.Errorf("%w: %v", ErrProtectEmpty, region)
	}
	hw.Protected = append(hw.Protected, region)
	hw.logf("protected %v", region)
	return
}

// IsProtected reports whether any byte of region is protected.
func (hw *Hardware) IsProtected(region arena.Region) bool {
	for _, r := range hw.Protected {
		if region.Lo < r.Hi && r.Lo < region.Hi {
			return true
		}
	}
	return false
}
