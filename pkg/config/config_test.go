package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Token string `yaml:"token"`
}

func (s *sample) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_TOKEN", "from-env")
	path := writeFile(t, "name: app\ntoken: ${SAMPLE_TOKEN}\n")

	var cfg sample
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "from-env" {
		t.Errorf("token = %q, want from-env", cfg.Token)
	}
}

func TestLoadValidates(t *testing.T) {
	path := writeFile(t, "token: x\n")

	var cfg sample
	if err := Load(path, &cfg); err == nil {
		t.Error("missing name should fail validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg sample
	if err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeFile(t, "name: [unclosed\n")

	var cfg sample
	if err := Load(path, &cfg); err == nil {
		t.Error("invalid YAML should fail")
	}
}

func TestLoadIfExistsMissingKeepsDefaults(t *testing.T) {
	cfg := sample{Name: "default"}
	if err := LoadIfExists(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err != nil {
		t.Fatalf("LoadIfExists: %v", err)
	}
	if cfg.Name != "default" {
		t.Errorf("name = %q, defaults were touched", cfg.Name)
	}
}

func TestLoadIfExistsValidatesDefaults(t *testing.T) {
	var cfg sample
	if err := LoadIfExists(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Error("invalid defaults should fail validation even without a file")
	}
}

func TestLoadIfExistsPresentFile(t *testing.T) {
	path := writeFile(t, "name: loaded\n")

	cfg := sample{Name: "default"}
	if err := LoadIfExists(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "loaded" {
		t.Errorf("name = %q, want loaded", cfg.Name)
	}
}
