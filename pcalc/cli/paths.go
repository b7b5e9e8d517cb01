package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration,
// logging/tracing and the REPL history.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	HistoryFile() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

// HistoryFile is located in the configuration directory, which will be
// created if necessary. Returns "" if the directory is not writable.
func (a appPaths) HistoryFile() string {
	dir := a.ConfigDir()
	if dir == "" || os.MkdirAll(dir, 0o755) != nil {
		return ""
	}
	return filepath.Join(dir, "history")
}

func appHome(appTag string) (a appPaths, err error) {
	a = appPaths{tag: strings.ToLower(appTag)}
	a.home, err = os.UserHomeDir()
	if err != nil {
		a.home = ""
	}
	return
}

// ConfigDir is the platform's user configuration directory, e.g.
// ~/.config/pcalc on Linux.
func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		if a.home == "" {
			return ""
		}
		c = filepath.Join(a.home, ".config")
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", a.tag)
}
