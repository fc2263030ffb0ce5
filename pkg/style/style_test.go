// pkg/style/style_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test icon lookup, palettes and colour detection

package style_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bonsai/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		isDir bool
		want  string
	}{
		{name: "directory", entry: "src", isDir: true, want: "📁"},
		{name: "directory_with_extension", entry: "site.html", isDir: true, want: "📁"},
		{name: "python", entry: "main.py", want: "🐍"},
		{name: "javascript", entry: "app.js", want: "📜"},
		{name: "typescript", entry: "app.ts", want: "📘"},
		{name: "html", entry: "index.html", want: "🌐"},
		{name: "css", entry: "site.css", want: "🎨"},
		{name: "json", entry: "package.json", want: "📋"},
		{name: "markdown", entry: "README.md", want: "📝"},
		{name: "text", entry: "notes.txt", want: "📄"},
		{name: "yml", entry: "ci.yml", want: "⚙️"},
		{name: "yaml", entry: "ci.yaml", want: "⚙️"},
		{name: "xml", entry: "feed.xml", want: "📰"},
		{name: "png", entry: "logo.png", want: "🖼️"},
		{name: "svg", entry: "logo.svg", want: "🖼️"},
		{name: "case_insensitive", entry: "PHOTO.JPEG", want: "🖼️"},
		{name: "unknown", entry: "binary.bin", want: "📄"},
		{name: "no_extension", entry: "Makefile", want: "📄"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, style.Icon(tt.entry, tt.isDir))
		})
	}
}

func TestPalette(t *testing.T) {
	t.Run("disabled_is_plain", func(t *testing.T) {
		p := style.NewPalette(&bytes.Buffer{}, false)

		assert.False(t, p.Enabled())
		assert.Equal(t, "src/", p.Paint("src/", true))
		assert.Equal(t, "main.go", p.Paint("main.go", false))
	})

	t.Run("enabled_uses_bright_colours", func(t *testing.T) {
		p := style.NewPalette(&bytes.Buffer{}, true)

		assert.True(t, p.Enabled())
		dir := p.Paint("src/", true)
		file := p.Paint("main.go", false)

		assert.Contains(t, dir, "\x1b[94m")
		assert.Contains(t, dir, "src/")
		assert.Contains(t, file, "\x1b[97m")
		assert.Contains(t, file, "main.go")
	})
}

func TestColorEnabled(t *testing.T) {
	t.Run("not_requested", func(t *testing.T) {
		assert.False(t, style.ColorEnabled(os.Stdout, false))
	})

	t.Run("no_color_env", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, style.ColorEnabled(os.Stdout, true))
	})

	t.Run("regular_file_is_not_a_terminal", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.False(t, style.ColorEnabled(f, true))
	})

	t.Run("nil_file", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, style.ColorEnabled(nil, true))
	})
}
