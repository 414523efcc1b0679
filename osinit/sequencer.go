package osinit

import (
	"fmt"
	"iter"
	"log"
	"slices"
	"sync"
)

// Subsystem is a single step of the init sequence.
type Subsystem struct {
	Name     string       // Unique name.
	Requires []string     // Subsystems that must be ready first.
	Init     func() error // Brings the subsystem up. May be nil.
}

type entry struct {
	Subsystem
	status Status
}

// Sequencer runs the init sequence exactly once.
type Sequencer struct {
	Verbose bool // If set, logs each step.

	mutex   sync.Mutex
	state   State
	entries []*entry
}

// Add appends a subsystem to the sequence. Only valid before Run.
func (seq *Sequencer) Add(sub Subsystem) (err error) {
	seq.mutex.Lock()
	defer seq.mutex.Unlock()

	if seq.state != STATE_NOT_STARTED {
		err = &ErrState{State: seq.state, Err: ErrSequenceStarted}
		return
	}

	if len(sub.Name) == 0 {
		err = ErrSubsystemName
		return
	}

	if seq.find(sub.Name) != nil {
		err = fmt.Errorf("%w: %v", ErrSubsystemDuplicate, sub.Name)
		return
	}

	sub.Requires = slices.Clone(sub.Requires)
	seq.entries = append(seq.entries, &entry{Subsystem: sub})

	return
}

// Run initializes every subsystem in order.
//
// Run may be called once. Any later call, including one made from inside an
// initializer, returns ErrSequenceReentered without doing anything. A
// requirement naming an unregistered subsystem fails the sequence before any
// initializer runs. The first initializer to fail, or panic, stops the
// sequence; the sequencer is then failed for good.
func (seq *Sequencer) Run() (err error) {
	seq.mutex.Lock()
	if seq.state != STATE_NOT_STARTED {
		state := seq.state
		seq.mutex.Unlock()
		err = &ErrState{State: state, Err: ErrSequenceReentered}
		return
	}
	seq.state = STATE_RUNNING
	entries := slices.Clone(seq.entries)
	seq.mutex.Unlock()

	// A panicking initializer leaves completed unset.
	completed := false
	defer func() {
		seq.mutex.Lock()
		defer seq.mutex.Unlock()
		if completed {
			seq.state = STATE_COMPLETE
		} else {
			seq.state = STATE_FAILED
		}
	}()

	err = checkRequires(entries)
	if err != nil {
		if seq.Verbose {
			log.Printf("osinit: %v", err)
		}
		return
	}

	for _, ent := range entries {
		err = seq.step(ent)
		if err != nil {
			if seq.Verbose {
				log.Printf("osinit: %v", err)
			}
			return
		}
	}

	if seq.Verbose {
		log.Printf("osinit: complete, %d subsystems", len(entries))
	}

	completed = true

	return
}

// checkRequires verifies every requirement names a registered subsystem.
func checkRequires(entries []*entry) (err error) {
	names := make(map[string]bool, len(entries))
	for _, ent := range entries {
		names[ent.Name] = true
	}

	for _, ent := range entries {
		for _, name := range ent.Requires {
			if !names[name] {
				err = &ErrSubsystem{Name: ent.Name, Err: fmt.Errorf("%w: %v", ErrSubsystemUnknown, name)}
				return
			}
		}
	}

	return
}

// step brings up a single subsystem.
func (seq *Sequencer) step(ent *entry) (err error) {
	for _, name := range ent.Requires {
		if seq.Status(name) != STATUS_READY {
			err = &ErrSubsystem{Name: ent.Name, Err: fmt.Errorf("%w: %v", ErrSubsystemDependency, name)}
			return
		}
	}

	if seq.Verbose {
		log.Printf("osinit: %v", ent.Name)
	}

	if ent.Init != nil {
		err = ent.Init()
		if err != nil {
			err = &ErrSubsystem{Name: ent.Name, Err: err}
			return
		}
	}

	seq.mutex.Lock()
	ent.status = STATUS_READY
	seq.mutex.Unlock()

	return
}

// find a subsystem by name. The mutex must be held.
func (seq *Sequencer) find(name string) *entry {
	for _, ent := range seq.entries {
		if ent.Name == name {
			return ent
		}
	}
	return nil
}

// State of the sequence.
func (seq *Sequencer) State() State {
	seq.mutex.Lock()
	defer seq.mutex.Unlock()

	return seq.state
}

// Done is true once every subsystem is ready.
func (seq *Sequencer) Done() bool {
	return seq.State() == STATE_COMPLETE
}

// Status of a subsystem. Unknown subsystems are never ready.
func (seq *Sequencer) Status(name string) Status {
	seq.mutex.Lock()
	defer seq.mutex.Unlock()

	ent := seq.find(name)
	if ent == nil {
		return STATUS_UNINITIALIZED
	}

	return ent.status
}

// Subsystems iterates over the subsystem names and status, in sequence order.
func (seq *Sequencer) Subsystems() iter.Seq2[string, Status] {
	return func(yield func(name string, status Status) bool) {
		seq.mutex.Lock()
		type pair struct {
			name   string
			status Status
		}
		pairs := make([]pair, 0, len(seq.entries))
		for _, ent := range seq.entries {
			pairs = append(pairs, pair{ent.Name, ent.status})
		}
		seq.mutex.Unlock()

		for _, p := range pairs {
			if !yield(p.name, p.status) {
				return
			}
		}
	}
}
