// Package translate selects a message printer for the user's locale and
// renders every user-visible asm2ms string through it.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asm2ms: locale: %v", err)
	}

	printer = NewPrinter(locales...)
}

// NewPrinter returns a printer for the best match among locales,
// falling back to en-US when none are given.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{language.AmericanEnglish.String()}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
