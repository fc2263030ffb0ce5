package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled decides whether colour should be emitted on out.
//
// requested is the user's setting. Colour is also turned off when NO_COLOR
// is set, when out is not a terminal, and when the terminal has no colour
// support.
func ColorEnabled(out *os.File, requested bool) bool {
	if !requested {
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if out == nil {
		return false
	}

	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}

	return termenv.NewOutput(out).ColorProfile() != termenv.Ascii
}
