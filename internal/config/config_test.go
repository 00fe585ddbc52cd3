package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/structree/internal/utils"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

func TestLoadIgnoreFilePatternsSkipsCommentsAndBlanks(testingHandle *testing.T) {
	testingHandle.Parallel()

	ignoreFilePath := filepath.Join(testingHandle.TempDir(), utils.IgnoreFileName)
	writeTestFile(testingHandle, ignoreFilePath, "# generated code\n\ngenerated/\n  *.snap  \n")

	patterns, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFilePatterns failed: %v", loadError)
	}
	if !reflect.DeepEqual(patterns, []string{"generated/", "*.snap"}) {
		testingHandle.Fatalf("unexpected patterns: %v", patterns)
	}
}

func TestLoadIgnoreFilePatternsMissingFile(testingHandle *testing.T) {
	testingHandle.Parallel()

	patterns, loadError := LoadIgnoreFilePatterns(filepath.Join(testingHandle.TempDir(), "absent"))
	if loadError != nil || patterns != nil {
		testingHandle.Fatalf("expected no patterns and no error, got %v, %v", patterns, loadError)
	}
}

func TestLoadCombinedExclusionPatterns(testingHandle *testing.T) {
	testingHandle.Parallel()

	testCases := []struct {
		name              string
		ignoreFileContent string
		exclusions        []string
		useIgnoreFile     bool
		expected          []string
	}{
		{
			name:              "ignore file then flags",
			ignoreFileContent: "fixtures\nfixtures\n",
			exclusions:        []string{"dist", " fixtures ", ""},
			useIgnoreFile:     true,
			expected:          []string{"fixtures", "dist"},
		},
		{
			name:              "ignore file disabled",
			ignoreFileContent: "fixtures\n",
			exclusions:        []string{"dist"},
			expected:          []string{"dist"},
		},
		{
			name:          "nothing configured",
			useIgnoreFile: true,
			expected:      []string{},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			testingHandle.Parallel()
			rootDirectory := testingHandle.TempDir()
			if testCase.ignoreFileContent != "" {
				writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.IgnoreFileName), testCase.ignoreFileContent)
			}
			patterns, loadError := LoadCombinedExclusionPatterns(rootDirectory, testCase.exclusions, testCase.useIgnoreFile)
			if loadError != nil {
				testingHandle.Fatalf("LoadCombinedExclusionPatterns failed: %v", loadError)
			}
			if !reflect.DeepEqual(patterns, testCase.expected) {
				testingHandle.Fatalf("unexpected patterns: got %v want %v", patterns, testCase.expected)
			}
		})
	}
}

func TestLoadCombinedExclusionPatternsReportsUnreadableFile(testingHandle *testing.T) {
	testingHandle.Parallel()

	rootDirectory := testingHandle.TempDir()
	if makeDirErr := os.Mkdir(filepath.Join(rootDirectory, utils.IgnoreFileName), 0o755); makeDirErr != nil {
		testingHandle.Fatalf("mkdir: %v", makeDirErr)
	}
	if _, loadError := LoadCombinedExclusionPatterns(rootDirectory, nil, true); loadError == nil {
		testingHandle.Fatalf("expected an error when the ignore file is a directory")
	}
}
