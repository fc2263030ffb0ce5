package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Tree colours use the 16-colour palette so they render the same on every
// terminal that supports colour at all
var (
	// DirColor is bright blue
	DirColor = lipgloss.Color("12")

	// FileColor is bright white
	FileColor = lipgloss.Color("15")
)

// Message colours adapt to light and dark backgrounds
var (
	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}
)
