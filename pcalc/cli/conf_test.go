package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/pflag"
)

func TestEnvKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.cli")
	defer teardown()
	//
	if k := envKey("PCALC_DISPLAY_PRECISION"); k != "display.precision" {
		t.Errorf("expected display.precision, got %q", k)
	}
}

func TestConfigFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.cli")
	defer teardown()
	//
	dir := t.TempDir()
	files := map[string]string{
		"calc.yaml": "store:\n  capacity: 7\ndisplay:\n  precision: 2\n",
		"calc.toml": "[store]\ncapacity = 7\n\n[display]\nprecision = 2\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		k := koanf.New(".")
		if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
			t.Fatal(err)
		}
		if err := loadConfigFile(k, path); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if c := k.Int("store.capacity"); c != 7 {
			t.Errorf("%s: expected capacity 7, got %d", name, c)
		}
		if p := k.Int("display.precision"); p != 2 {
			t.Errorf("%s: expected precision 2, got %d", name, p)
		}
		if w := k.Int("display.width"); w != 6 {
			t.Errorf("%s: expected default width 6, got %d", name, w)
		}
	}
	if err := loadConfigFile(koanf.New("."), filepath.Join(dir, "calc.ini")); err == nil {
		t.Errorf("expected unsupported format to be rejected")
	}
}

func TestFlagKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.cli")
	defer teardown()
	//
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("capacity", 20, "")
	flags.Int("precision", 6, "")
	if err := flags.Parse([]string{"--capacity", "3"}); err != nil {
		t.Fatal(err)
	}
	k := koanf.New(".")
	k.Load(confmap.Provider(defaults, "."), nil)
	if err := mergeFlags(koanfadapter.New(k, "PCALC", []string{"nt"}), flags); err != nil {
		t.Fatal(err)
	}
	if c := k.Int("store.capacity"); c != 3 {
		t.Errorf("expected store.capacity 3 from flag, got %d", c)
	}
	if p := k.Int("display.precision"); p != 6 {
		t.Errorf("expected unchanged precision 6, got %d", p)
	}
}
