package console

// Class is the broad family of a console variant.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_UNKNOWN     = Class(0) // unknown
	CLASS_RETAIL      = Class(1) // retail
	CLASS_DEVELOPMENT = Class(2) // development
	CLASS_TDEV        = Class(3) // tdev
)
