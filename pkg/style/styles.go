package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds the styles for one output destination.
//
// A disabled palette renders every string unchanged.
type Palette struct {
	enabled bool

	Dir     lipgloss.Style
	File    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// NewPalette creates styles bound to w. When enabled is true colours are
// forced to the ANSI profile, regardless of what w is connected to.
func NewPalette(w io.Writer, enabled bool) *Palette {
	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Palette{
		enabled: enabled,
		Dir:     r.NewStyle().Foreground(DirColor),
		File:    r.NewStyle().Foreground(FileColor),
		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		Success: r.NewStyle().
			Foreground(SuccessColor).
			Bold(true),
		Muted: r.NewStyle().Foreground(MutedColor),
	}
}

// Enabled reports whether the palette emits colour
func (p *Palette) Enabled() bool {
	return p.enabled
}

// ForNode returns the style for a tree entry
func (p *Palette) ForNode(isDir bool) lipgloss.Style {
	if isDir {
		return p.Dir
	}
	return p.File
}

// Paint renders s with the node style, or returns it unchanged when the
// palette is disabled
func (p *Palette) Paint(s string, isDir bool) string {
	if !p.enabled {
		return s
	}
	return p.ForNode(isDir).Render(s)
}
