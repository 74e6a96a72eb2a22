package publish

import "strings"

// CommandConfiguration captures configuration values for the publish command.
type CommandConfiguration struct {
	BranchName      string `mapstructure:"branch"`
	RemoteName      string `mapstructure:"remote"`
	CommitMessage   string `mapstructure:"commit_message"`
	ContinueOnError bool   `mapstructure:"continue_on_error"`
}

// DefaultCommandConfiguration provides baseline configuration values for publish.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		BranchName:      DefaultBranchNameConstant,
		RemoteName:      DefaultRemoteNameConstant,
		CommitMessage:   DefaultCommitMessageConstant,
		ContinueOnError: false,
	}
}

// DefaultConfigurationValues exposes configuration defaults keyed for the loader.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + ".branch":            defaults.BranchName,
		configurationKey + ".remote":            defaults.RemoteName,
		configurationKey + ".commit_message":    defaults.CommitMessage,
		configurationKey + ".continue_on_error": defaults.ContinueOnError,
	}
}

// sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.BranchName = strings.TrimSpace(configuration.BranchName)
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	sanitized.CommitMessage = strings.TrimSpace(configuration.CommitMessage)

	return sanitized
}
