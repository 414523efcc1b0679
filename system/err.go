package system

import (
	"errors"

	"github.com/ezrec/revoos/translate"
)

var f = translate.From

var (
	ErrNotInitialized = errors.New(f("system not initialized"))
	ErrHardwareState  = errors.New(f("hardware not ready"))
	ErrAudioStopped   = errors.New(f("audio system not running"))
	ErrProtectEmpty   = errors.New(f("protected region empty"))
	ErrArenaProtected = errors.New(f("arena overlaps protected memory"))
)
