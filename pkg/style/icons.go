package style

import (
	"path/filepath"
	"strings"
)

const (
	// DirIcon is shown for every directory
	DirIcon = "📁"

	// DefaultIcon is shown for files with an unknown extension
	DefaultIcon = "📄"

	imageIcon  = "🖼️"
	configIcon = "⚙️"
)

// Icon returns the icon for an entry, chosen by its lowercased extension
func Icon(name string, isDir bool) string {
	if isDir {
		return DirIcon
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".py":
		return "🐍"
	case ".js":
		return "📜"
	case ".ts":
		return "📘"
	case ".html":
		return "🌐"
	case ".css":
		return "🎨"
	case ".json":
		return "📋"
	case ".md":
		return "📝"
	case ".txt":
		return "📄"
	case ".yml", ".yaml":
		return configIcon
	case ".xml":
		return "📰"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg":
		return imageIcon
	default:
		return DefaultIcon
	}
}
