package output

import (
	"io"
	"path/filepath"

	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/paths"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/rs/zerolog"
)

// Writer sends rendered output to stdout or to a file
type Writer struct {
	fs     types.FS
	stdout io.Writer
	logger zerolog.Logger
}

// NewWriter creates a writer. Files are written through fsys.
func NewWriter(fsys types.FS, stdout io.Writer) *Writer {
	return &Writer{
		fs:     fsys,
		stdout: stdout,
		logger: logging.GetLogger("output.writer"),
	}
}

// Write writes data to file, or to stdout when file is empty. It returns the
// absolute path written, or "" for stdout.
func (w *Writer) Write(data []byte, file string) (string, error) {
	if file == "" {
		if _, err := w.stdout.Write(data); err != nil {
			return "", errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
		}
		return "", nil
	}

	dest, err := filepath.Abs(paths.ExpandHome(file))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrOutputWrite, "invalid output path %s", file).
			WithDetail("path", file)
	}

	if err := w.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrOutputWrite, "failed to create directory for %s", dest).
			WithDetail("path", dest)
	}

	if err := w.fs.WriteFile(dest, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrOutputWrite, "failed to write %s", dest).
			WithDetail("path", dest)
	}

	w.logger.Debug().
		Str("path", dest).
		Int("bytes", len(data)).
		Msg("Output written")

	return dest, nil
}
