// Package utils contains general helpers shared by the boundtree packages.
package utils

const (
	// ConfigFileName is the name of the configuration file inside the global directory.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the name of the configuration file in a working directory.
	LocalConfigFileName = ".boundtree.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
	GlobalConfigDirectoryName = ".boundtree"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command errors.
	ApplicationExecutionFailedMessage = "boundtree failed"
)
