// Package translate formats user-facing messages for the current locale.
//
// The language is picked from the environment at startup and may be
// overridden once the command line has been parsed.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DEFAULT_LANGUAGE = "en-US"

var (
	mutex   sync.RWMutex
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("revoos: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DEFAULT_LANGUAGE}
	}

	use(message.MatchLanguage(locales...))
}

func use(t language.Tag) {
	mutex.Lock()
	defer mutex.Unlock()

	tag = t
	printer = message.NewPrinter(t)
}

// SetLanguage selects the message language by BCP 47 name, such as "ja-JP".
func SetLanguage(name string) (err error) {
	t, err := language.Parse(name)
	if err != nil {
		return
	}

	use(t)
	return
}

// Language is the language messages are currently formatted for.
func Language() language.Tag {
	mutex.RLock()
	defer mutex.RUnlock()

	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	p := printer
	mutex.RUnlock()

	return p.Sprintf(key, args...)
}
