package genconfig

import (
	"github.com/arthur-debert/bonsai/pkg/commands/internal"
	"github.com/arthur-debert/bonsai/pkg/config"
	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/paths"
	"github.com/arthur-debert/bonsai/pkg/types"
)

// GenConfigOptions holds options for the config command
type GenConfigOptions struct {
	// Config is the effective configuration
	Config *config.Config

	// Template selects the commented default file instead of the effective
	// configuration
	Template bool

	// Write stores the template as the project file in Config.Root
	Write bool

	// FS is the filesystem to write to. Defaults to the real filesystem.
	FS types.FS
}

// GenConfigResult holds the result of the config command
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// GenConfig outputs the effective configuration, or outputs or writes the
// default configuration template
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	if !opts.Template && !opts.Write {
		data, err := opts.Config.Marshal()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRender, "failed to encode configuration")
		}
		logger.Debug().Msg("Outputting effective config")
		return &GenConfigResult{ConfigContent: string(data)}, nil
	}

	result := &GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config template to stdout")
		return result, nil
	}

	fsys := internal.FS(opts.FS)
	target := paths.ProjectConfigFile(opts.Config.Root)

	if _, err := fsys.Stat(target); err == nil {
		logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := fsys.WriteFile(target, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrOutputWrite, "failed to write config to %s", target).
			WithDetail("path", target)
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}
