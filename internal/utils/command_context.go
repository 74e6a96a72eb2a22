package utils

import "context"

type commandContextKey string

const configurationFilePathKey = commandContextKey("configuration-file-path")

// CommandContextAccessor stores and retrieves CLI execution metadata on a
// context without exposing the underlying keys.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath records the resolved configuration file path on
// the returned context.
func (CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathKey, configurationFilePath)
}

// ConfigurationFilePath reports the configuration file path previously
// recorded on the context, if any.
func (CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	recordedPath, found := executionContext.Value(configurationFilePathKey).(string)
	return recordedPath, found
}
