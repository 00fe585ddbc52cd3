package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/structree/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
	HomeDirectory    string
}

// ApplicationConfiguration holds defaults for a structree run. Unset optional
// fields are nil so that merging can tell "absent" from "false".
type ApplicationConfiguration struct {
	OutputDirectory string   `mapstructure:"output_directory"`
	WriteFile       *bool    `mapstructure:"write_file"`
	Copy            *bool    `mapstructure:"copy"`
	CommentColumn   *int     `mapstructure:"comment_column"`
	UseIgnoreFile   *bool    `mapstructure:"use_ignore_file"`
	Exclude         []string `mapstructure:"exclude"`
}

// LoadApplicationConfiguration loads configuration from the global file and
// then from the local (or explicit) file, the latter taking precedence.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	homeDirectory := options.HomeDirectory
	if homeDirectory == "" {
		if resolvedHome, err := os.UserHomeDir(); err == nil {
			homeDirectory = resolvedHome
		}
	}
	if homeDirectory != "" {
		globalConfig, loadErr := loadConfigurationFromPath(GlobalConfigurationPath(homeDirectory), false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return ApplicationConfiguration{}, resolveErr
	}
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	merged.Exclude = utils.DeduplicatePatterns(merged.Exclude)
	if err := merged.Validate(); err != nil {
		return ApplicationConfiguration{}, err
	}
	return merged, nil
}

// GlobalConfigurationPath returns the global configuration file below homeDirectory.
func GlobalConfigurationPath(homeDirectory string) string {
	return filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
}

// Validate rejects values no run could honor.
func (config ApplicationConfiguration) Validate() error {
	if config.CommentColumn != nil && *config.CommentColumn <= 0 {
		return fmt.Errorf("comment_column must be positive, got %d", *config.CommentColumn)
	}
	return nil
}

// ShouldWriteFile reports whether the Markdown file is written. Defaults to true.
func (config ApplicationConfiguration) ShouldWriteFile() bool {
	return config.WriteFile == nil || *config.WriteFile
}

// ShouldCopy reports whether the document is copied to the clipboard. Defaults to false.
func (config ApplicationConfiguration) ShouldCopy() bool {
	return config.Copy != nil && *config.Copy
}

// ShouldUseIgnoreFile reports whether the root ignore file is read. Defaults to true.
func (config ApplicationConfiguration) ShouldUseIgnoreFile() bool {
	return config.UseIgnoreFile == nil || *config.UseIgnoreFile
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolute, err := filepath.Abs(explicitPath)
			if err != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
			}
			return absolute, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

// loadConfigurationFromPath reads one YAML file. A missing file yields an empty
// configuration unless required is set.
func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.OutputDirectory != "" {
		result.OutputDirectory = override.OutputDirectory
	}
	if override.WriteFile != nil {
		result.WriteFile = cloneBool(override.WriteFile)
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	if override.CommentColumn != nil {
		result.CommentColumn = cloneInt(override.CommentColumn)
	}
	if override.UseIgnoreFile != nil {
		result.UseIgnoreFile = cloneBool(override.UseIgnoreFile)
	}
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, utils.DeduplicatePatterns(override.Exclude)...)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
