package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Asaurus1/personal-calc"
	"github.com/Asaurus1/personal-calc/variables"
	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"
)

// defaults are the built-in configuration values, overridden by config files,
// environment and flags (in that order).
var defaults = map[string]interface{}{
	"store.capacity":    variables.DefaultCapacity,
	"display.precision": 6,
	"display.width":     6,
	"repl.echo":         true,
	"tracing.adapter":   "go",
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"capacity":  "store.capacity",
	"precision": "display.precision",
	"echo":      "repl.echo",
}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k, err := newConfiguration(rootCmd.PersistentFlags(), env.Provider)
	if err != nil {
		tracing.Errorf(err.Error())
		pcalc.Exit(1)
	}
	pcalc.Configuration = k // push the configuration to app-global scope
}

// newConfiguration assembles the configuration layers. envProvider is
// a parameter for tests, which need to keep the process environment out.
func newConfiguration(flags *pflag.FlagSet,
	envProvider func(string, string, func(string) string) *env.Env) (*koanf.Koanf, error) {
	//
	k := koanf.New(".") // '.' is hierarchy delimiter
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}
	// We locate pcalc configuration with an application-key of 'PCALC' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "PCALC", []string{"nt"})
	konf.InitDefaults()
	if path, _ := flags.GetString("config"); path != "" {
		if err := loadConfigFile(k, path); err != nil {
			return nil, err
		}
	}
	if envProvider != nil {
		if err := k.Load(envProvider("PCALC_", ".", envKey), nil); err != nil {
			return nil, err
		}
	}
	if err := mergeFlags(konf, flags); err != nil {
		return nil, err
	}
	if err := configureTracing(konf); err != nil {
		return nil, err
	}
	return k, nil
}

// envKey transforms PCALC_DISPLAY_PRECISION into display.precision.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PCALC_")), "_", ".")
}

// loadConfigFile merges a YAML or TOML file into k, selected by suffix.
func loadConfigFile(k *koanf.Koanf, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %q: %w", path, err)
		}
	case ".toml":
		var m map[string]interface{}
		if _, err := toml.DecodeFile(path, &m); err != nil {
			return fmt.Errorf("loading config file %q: %w", path, err)
		}
		if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
			return fmt.Errorf("loading config file %q: %w", path, err)
		}
	default:
		return fmt.Errorf("config file %q: unsupported format", path)
	}
	tracing.Infof("configuration loaded from %q", path)
	return nil
}

func mergeFlags(konf *koanfadapter.KConf, flags *pflag.FlagSet) error {
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	mapped := make(map[string]interface{}, len(flagKeys))
	for flag, key := range flagKeys {
		if flags.Changed(flag) {
			mapped[key] = konf.Koanf().Get(flag)
		}
	}
	if err = konf.Koanf().Load(confmap.Provider(mapped, "."), nil); err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return nil
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	paths := locateLogDir()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths != nil && paths.LogDir() != "" {
			dest = "file://" + filepath.Join(paths.LogDir(), dest)
			konf.Set("tracing.destination", dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func locateLogDir() AppPaths {
	paths, err := DefaultAppPaths("PCALC")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
		return nil
	}
	return paths
}
