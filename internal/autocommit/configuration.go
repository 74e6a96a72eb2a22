package autocommit

import "strings"

// CommandConfiguration captures configuration values for the commit-push command.
type CommandConfiguration struct {
	BranchName string `mapstructure:"branch"`
	RemoteName string `mapstructure:"remote"`
	RemoteURL  string `mapstructure:"remote_url"`
}

// DefaultCommandConfiguration provides baseline configuration values for commit-push.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		BranchName: DefaultBranchNameConstant,
		RemoteName: DefaultRemoteNameConstant,
		RemoteURL:  "",
	}
}

// DefaultConfigurationValues exposes configuration defaults keyed for the loader.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + ".branch":     defaults.BranchName,
		configurationKey + ".remote":     defaults.RemoteName,
		configurationKey + ".remote_url": defaults.RemoteURL,
	}
}

// sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.BranchName = strings.TrimSpace(configuration.BranchName)
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	sanitized.RemoteURL = strings.TrimSpace(configuration.RemoteURL)

	return sanitized
}
