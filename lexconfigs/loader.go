package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/vandior/vlex/configs"
	"github.com/vandior/vlex/logs"
	"github.com/vandior/vlex/modes"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"vlex.cue",
	".vlex.cue",
}

// ConfigsLoader loads vlex.cue from the working directory, the user config dir and /etc,
// in that order of precedence. Development mode reads no files.
func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, Schema)
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, Schema)
}
