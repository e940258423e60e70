package appconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	d, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if d != "/tmp/xdg-test/hostbook" {
		t.Fatalf("unexpected config dir: %s", d)
	}
}

func TestLoad_CreatesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Style != "auto" {
		t.Fatalf("unexpected default style: %s", cfg.Output.Style)
	}
	if !strings.HasSuffix(cfg.ProfilesPath, filepath.Join(".ssh", "config")) {
		t.Fatalf("unexpected default profiles path: %s", cfg.ProfilesPath)
	}

	d, _ := ConfigDir()
	if _, err := os.Stat(filepath.Join(d, "config.yaml")); err != nil {
		t.Fatalf("expected config.yaml created with defaults: %v", err)
	}
}

func TestLoad_ReadsAndSanitizes(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgDir := filepath.Join(dir, "hostbook")
	if err := os.MkdirAll(cfgDir, 0o700); err != nil {
		t.Fatal(err)
	}
	content := "profiles_path: /tmp/profiles\noutput:\n  style: fancy\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ProfilesPath != "/tmp/profiles" {
		t.Fatalf("profiles_path not honored: %s", cfg.ProfilesPath)
	}
	if cfg.Output.Style != "auto" {
		t.Fatalf("unknown style should fall back to auto, got %s", cfg.Output.Style)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Default()
	want.ProfilesPath = "/srv/profiles"
	want.Output.Style = "plain"
	if err := Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.ProfilesPath != want.ProfilesPath || got.Output.Style != want.Output.Style {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
}
