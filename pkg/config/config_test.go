package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type sample struct {
	Name     string        `yaml:"name"`
	Debounce time.Duration `yaml:"debounce"`
}

func (s *sample) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TXTINDEX_TEST_NAME", "from-env")
	path := writeConfig(t, "name: ${TXTINDEX_TEST_NAME}\ndebounce: 250ms\n")

	var s sample
	if err := Load(path, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "from-env" || s.Debounce != 250*time.Millisecond {
		t.Errorf("loaded %+v", s)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, "debounce: 1s\n")
	var s sample
	if err := Load(path, &s); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var s sample
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &s); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadOptional_MissingKeepsDefaults(t *testing.T) {
	s := sample{Name: "default"}
	found, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &s)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if found || s.Name != "default" {
		t.Errorf("found=%v sample=%+v", found, s)
	}
}

func TestLoadOptional_OverridesDefaults(t *testing.T) {
	s := sample{Name: "default", Debounce: time.Second}
	path := writeConfig(t, "name: custom\n")
	found, err := LoadOptional(path, &s)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if !found || s.Name != "custom" || s.Debounce != time.Second {
		t.Errorf("found=%v sample=%+v", found, s)
	}
}

func TestLoadOptional_BadYAML(t *testing.T) {
	path := writeConfig(t, "name: [unterminated\n")
	var s sample
	if _, err := LoadOptional(path, &s); err == nil {
		t.Fatal("expected parse error")
	}
}
