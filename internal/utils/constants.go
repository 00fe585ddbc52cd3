package utils

// LoggerInitializationFailedMessageFormat is used when the zap logger cannot be built.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes the fatal log line written by main.
const ApplicationExecutionFailedMessage = "structree failed"

// Configuration file locations.
const (
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".structree.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
	GlobalConfigDirectoryName = ".structree"
	// GlobalConfigFileName is the configuration file inside GlobalConfigDirectoryName.
	GlobalConfigFileName = "config.yaml"
)

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"

// IgnoreFileName lists extra exclusion patterns at the root of a scanned tree.
const IgnoreFileName = ".structreeignore"
