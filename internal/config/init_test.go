package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/structree/internal/utils"
)

func TestInitializeConfigurationCreatesLocalFile(t *testing.T) {
	t.Parallel()

	workingDirectory := t.TempDir()
	path, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, path)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	if !strings.Contains(string(content), "comment_column: 35") {
		t.Fatalf("unexpected configuration content: %s", string(content))
	}

	loaded, loadErr := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory, HomeDirectory: t.TempDir()})
	if loadErr != nil {
		t.Fatalf("generated configuration must load: %v", loadErr)
	}
	if !loaded.ShouldWriteFile() || loaded.ShouldCopy() || loaded.CommentColumn == nil || *loaded.CommentColumn != 35 {
		t.Fatalf("generated configuration must reproduce the defaults, got %+v", loaded)
	}
}

func TestInitializeConfigurationHonorsGlobalTarget(t *testing.T) {
	t.Parallel()

	homeDirectory := t.TempDir()
	path, err := InitializeConfiguration(InitOptions{Target: InitTargetGlobal, HomeDirectory: homeDirectory, Force: true})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	if path != GlobalConfigurationPath(homeDirectory) {
		t.Fatalf("expected global configuration path, got %s", path)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected file to exist at %s: %v", path, statErr)
	}
}

func TestInitializeConfigurationPreventsOverwriteWithoutForce(t *testing.T) {
	t.Parallel()

	workingDirectory := t.TempDir()
	path := filepath.Join(workingDirectory, utils.ConfigFileName)
	if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
		t.Fatalf("write seed config: %v", err)
	}
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal}); err == nil {
		t.Fatalf("expected error when configuration already exists")
	}
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal, Force: true}); err != nil {
		t.Fatalf("expected forced overwrite to succeed: %v", err)
	}
}

func TestInitializeConfigurationRejectsUnknownTarget(t *testing.T) {
	t.Parallel()

	if _, err := InitializeConfiguration(InitOptions{Target: InitTarget("remote"), WorkingDirectory: t.TempDir()}); err == nil {
		t.Fatalf("expected an error for an unknown target")
	}
}
