package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/structree/internal/utils"
)

const (
	expectedOutputFileName = "file-structure-2024-06-01T12-30-45.md"

	// toggleFlagInvalidValueLabel is the fixed part of errorToggleLiteralFormat.
	toggleFlagInvalidValueLabel = "is not a toggle value"
)

type recordingCopier struct {
	copied []string
	err    error
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copied = append(copier.copied, text)
	return copier.err
}

type cliFixture struct {
	rootDirectory    string
	workingDirectory string
	homeDirectory    string
	copier           *recordingCopier
	logs             *observer.ObservedLogs
	dependencies     Dependencies
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	logLevel := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	core, logs := observer.New(logLevel)
	fixture := &cliFixture{
		rootDirectory:    filepath.Join(t.TempDir(), "project"),
		workingDirectory: t.TempDir(),
		homeDirectory:    t.TempDir(),
		copier:           &recordingCopier{},
		logs:             logs,
	}
	fixture.dependencies = Dependencies{
		Logger:           zap.New(core),
		LogLevel:         &logLevel,
		Copier:           fixture.copier,
		Now:              func() time.Time { return time.Date(2024, time.June, 1, 12, 30, 45, 0, time.UTC) },
		WorkingDirectory: fixture.workingDirectory,
		HomeDirectory:    fixture.homeDirectory,
	}
	for _, relativePath := range []string{"src/main.go", "README.md", "node_modules/pkg/index.js", "generated/api.go"} {
		fixture.writeFile(t, filepath.Join(fixture.rootDirectory, relativePath), "x")
	}
	return fixture
}

func (fixture *cliFixture) writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func (fixture *cliFixture) run(t *testing.T, arguments ...string) (string, error) {
	t.Helper()
	toggles := toggleSet{}
	rootCommand := createRootCommand(fixture.dependencies, toggles)
	var standardOutput bytes.Buffer
	rootCommand.SetOut(&standardOutput)
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetArgs(toggles.attachLiterals(arguments))
	executeError := rootCommand.Execute()
	return standardOutput.String(), executeError
}

func (fixture *cliFixture) outputFilePath() string {
	return filepath.Join(fixture.workingDirectory, expectedOutputFileName)
}

func TestRootCommandWritesDocument(t *testing.T) {
	t.Parallel()

	fixture := newCLIFixture(t)
	printed, err := fixture.run(t, fixture.rootDirectory)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, expected := range []string{"```\n📁 project/\n", "├── 📁 src/", "└── 📖 README.md", "✅ Structure saved to: " + fixture.outputFilePath(), "📊 Total annotated names: "} {
		if !strings.Contains(printed, expected) {
			t.Fatalf("expected %q in output:\n%s", expected, printed)
		}
	}
	if strings.Contains(printed, "node_modules") {
		t.Fatalf("default ignore rules must apply:\n%s", printed)
	}

	document, readError := os.ReadFile(fixture.outputFilePath())
	if readError != nil {
		t.Fatalf("expected document at %s: %v", fixture.outputFilePath(), readError)
	}
	if !strings.HasPrefix(string(document), "# 📂 Project File Structure\n") || !strings.Contains(string(document), "🔵 main.go") {
		t.Fatalf("unexpected document:\n%s", document)
	}
	if len(fixture.copier.copied) != 0 {
		t.Fatalf("clipboard must not be used without --copy")
	}
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		arguments     []string
		localConfig   string
		ignoreFile    string
		expectFile    bool
		expectCopy    bool
		hiddenNames   []string
		visibleNames  []string
		expectedLines []string
	}{
		{
			name:         "no file",
			arguments:    []string{"--no-file"},
			expectFile:   false,
			visibleNames: []string{"generated/"},
		},
		{
			name:       "copy with literal before path",
			arguments:  []string{"--copy", "yes"},
			expectFile: true,
			expectCopy: true,
		},
		{
			name:         "repeated exclusions",
			arguments:    []string{"-e", "generated", "-e", "*.md"},
			expectFile:   true,
			hiddenNames:  []string{"generated/", "README.md"},
			visibleNames: []string{"src/"},
		},
		{
			name:         "directory-only exclusion",
			arguments:    []string{"-e", "generated/", "-e", "README.md/"},
			expectFile:   true,
			hiddenNames:  []string{"generated/", "api.go"},
			visibleNames: []string{"README.md"},
		},
		{
			name:        "configuration file",
			localConfig: "write_file: false\ncopy: true\nexclude: [generated]\n",
			expectFile:  false,
			expectCopy:  true,
			hiddenNames: []string{"generated/"},
		},
		{
			name:        "flags override configuration",
			arguments:   []string{"--no-file=false", "--copy=no"},
			localConfig: "write_file: false\ncopy: true\n",
			expectFile:  true,
			expectCopy:  false,
		},
		{
			name:        "ignore file",
			ignoreFile:  "# local rules\nsrc\n",
			expectFile:  true,
			hiddenNames: []string{"src/"},
		},
		{
			name:         "ignore file disabled",
			arguments:    []string{"--no-ignore-file"},
			ignoreFile:   "src\n",
			expectFile:   true,
			visibleNames: []string{"src/"},
		},
		{
			name:          "comment column",
			arguments:     []string{"--column", "12"},
			expectFile:    true,
			expectedLines: []string{"├── 📁 src/" + strings.Repeat(" ", 8) + " # Main application source code"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			fixture := newCLIFixture(t)
			if testCase.localConfig != "" {
				fixture.writeFile(t, filepath.Join(fixture.workingDirectory, utils.ConfigFileName), testCase.localConfig)
			}
			if testCase.ignoreFile != "" {
				fixture.writeFile(t, filepath.Join(fixture.rootDirectory, utils.IgnoreFileName), testCase.ignoreFile)
			}

			arguments := append(append([]string{}, testCase.arguments...), fixture.rootDirectory)
			printed, err := fixture.run(t, arguments...)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}

			_, statError := os.Stat(fixture.outputFilePath())
			if fileWritten := statError == nil; fileWritten != testCase.expectFile {
				t.Fatalf("expected file written %t, got %t", testCase.expectFile, fileWritten)
			}
			if testCase.expectFile != strings.Contains(printed, "Structure saved to") {
				t.Fatalf("saved line must match file writing:\n%s", printed)
			}
			if copied := len(fixture.copier.copied) == 1; copied != testCase.expectCopy {
				t.Fatalf("expected copy %t, got %d copies", testCase.expectCopy, len(fixture.copier.copied))
			}
			if testCase.expectCopy && !strings.HasPrefix(fixture.copier.copied[0], "# 📂 Project File Structure") {
				t.Fatalf("expected the full document on the clipboard, got %q", fixture.copier.copied[0])
			}
			for _, hidden := range testCase.hiddenNames {
				if strings.Contains(printed, hidden) {
					t.Fatalf("expected %q to be excluded:\n%s", hidden, printed)
				}
			}
			for _, visible := range testCase.visibleNames {
				if !strings.Contains(printed, visible) {
					t.Fatalf("expected %q to be rendered:\n%s", visible, printed)
				}
			}
			for _, expectedLine := range testCase.expectedLines {
				if !strings.Contains(printed, expectedLine+"\n") {
					t.Fatalf("expected line %q in output:\n%s", expectedLine, printed)
				}
			}
		})
	}
}

func TestRootCommandClipboardFailureIsAWarning(t *testing.T) {
	t.Parallel()

	fixture := newCLIFixture(t)
	fixture.copier.err = errors.New("no clipboard")
	if _, err := fixture.run(t, "--copy", "--no-file", fixture.rootDirectory); err != nil {
		t.Fatalf("clipboard failures must not fail the run: %v", err)
	}
	if fixture.logs.FilterMessage(warningClipboardMessage).Len() != 1 {
		t.Fatalf("expected one clipboard warning")
	}
}

func TestRootCommandVerboseLowersInjectedLogLevel(t *testing.T) {
	t.Parallel()

	fixture := newCLIFixture(t)
	if _, err := fixture.run(t, "--no-file", fixture.rootDirectory); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if fixture.logs.FilterMessage("ignored entry").Len() != 0 {
		t.Fatalf("debug entries must stay hidden without --verbose")
	}

	if _, err := fixture.run(t, "--verbose", "--no-file", fixture.rootDirectory); err != nil {
		t.Fatalf("verbose run failed: %v", err)
	}
	ignoredEntries := fixture.logs.FilterMessage("ignored entry").All()
	if len(ignoredEntries) == 0 {
		t.Fatalf("expected debug entries on the injected logger")
	}
	if path := ignoredEntries[0].ContextMap()["path"]; path != "node_modules" {
		t.Fatalf("expected node_modules to be reported, got %v", path)
	}
	if fixture.dependencies.LogLevel.Level() != zapcore.DebugLevel {
		t.Fatalf("expected debug level after --verbose, got %s", fixture.dependencies.LogLevel.Level())
	}
}

func TestRootCommandErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		arguments     func(fixture *cliFixture) []string
		localConfig   string
		expectedError string
	}{
		{
			name:          "missing root",
			arguments:     func(fixture *cliFixture) []string { return []string{filepath.Join(fixture.rootDirectory, "absent")} },
			expectedError: "does not exist",
		},
		{
			name: "root is a file",
			arguments: func(fixture *cliFixture) []string {
				return []string{filepath.Join(fixture.rootDirectory, "README.md")}
			},
			expectedError: "is not a directory",
		},
		{
			name:          "non-positive column",
			arguments:     func(fixture *cliFixture) []string { return []string{"--column", "0", fixture.rootDirectory} },
			expectedError: "must be positive",
		},
		{
			name:          "invalid configuration",
			arguments:     func(fixture *cliFixture) []string { return []string{fixture.rootDirectory} },
			localConfig:   "comment_column: -1\n",
			expectedError: "loading configuration",
		},
		{
			name:          "invalid exclusion",
			arguments:     func(fixture *cliFixture) []string { return []string{"-e", "[broken", fixture.rootDirectory} },
			expectedError: "applying exclusions",
		},
		{
			name: "unwritable output directory",
			arguments: func(fixture *cliFixture) []string {
				return []string{"--output-dir", filepath.Join(fixture.workingDirectory, "absent"), fixture.rootDirectory}
			},
			expectedError: "writing document",
		},
		{
			name:          "too many paths",
			arguments:     func(fixture *cliFixture) []string { return []string{fixture.rootDirectory, fixture.rootDirectory} },
			expectedError: "accepts at most 1 arg",
		},
		{
			name:          "invalid toggle literal",
			arguments:     func(fixture *cliFixture) []string { return []string{"--copy=maybe", fixture.rootDirectory} },
			expectedError: toggleFlagInvalidValueLabel,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			fixture := newCLIFixture(t)
			if testCase.localConfig != "" {
				fixture.writeFile(t, filepath.Join(fixture.workingDirectory, utils.ConfigFileName), testCase.localConfig)
			}
			_, err := fixture.run(t, testCase.arguments(fixture)...)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), testCase.expectedError) {
				t.Fatalf("expected error containing %q, got %v", testCase.expectedError, err)
			}
		})
	}
}

func TestRootCommandOutputDirectory(t *testing.T) {
	t.Parallel()

	fixture := newCLIFixture(t)
	outputDirectory := t.TempDir()
	if _, err := fixture.run(t, "--output-dir", outputDirectory, fixture.rootDirectory); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, statError := os.Stat(filepath.Join(outputDirectory, expectedOutputFileName)); statError != nil {
		t.Fatalf("expected document in %s: %v", outputDirectory, statError)
	}
	if _, statError := os.Stat(fixture.outputFilePath()); statError == nil {
		t.Fatalf("document must not be written to the working directory")
	}
}

func TestRootCommandVersion(t *testing.T) {
	t.Parallel()

	fixture := newCLIFixture(t)
	printed, err := fixture.run(t, "--version")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(printed, "structree version: ") {
		t.Fatalf("unexpected version output %q", printed)
	}
	if _, statError := os.Stat(fixture.outputFilePath()); statError == nil {
		t.Fatalf("--version must not render a tree")
	}
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	fixture := newCLIFixture(t)
	printed, err := fixture.run(t, "init")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	localPath := filepath.Join(fixture.workingDirectory, utils.ConfigFileName)
	if !strings.Contains(printed, localPath) {
		t.Fatalf("expected written path in output, got %q", printed)
	}
	if _, err := fixture.run(t, "init"); err == nil {
		t.Fatalf("expected init to refuse overwriting without --force")
	}
	if _, err := fixture.run(t, "init", "--force"); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}

	if _, err := fixture.run(t, "init", "--global"); err != nil {
		t.Fatalf("global init failed: %v", err)
	}
	globalPath := filepath.Join(fixture.homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
	if _, statError := os.Stat(globalPath); statError != nil {
		t.Fatalf("expected global configuration at %s: %v", globalPath, statError)
	}

	if _, err := fixture.run(t, fixture.rootDirectory); err != nil {
		t.Fatalf("run with generated configuration failed: %v", err)
	}
	if _, statError := os.Stat(fixture.outputFilePath()); statError != nil {
		t.Fatalf("generated configuration must keep writing the document: %v", statError)
	}
}
