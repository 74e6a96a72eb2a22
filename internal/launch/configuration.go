package launch

import "strings"

// CommandConfiguration captures configuration values for the launch and
// create-remote commands.
type CommandConfiguration struct {
	Owner          string `mapstructure:"owner"`
	RepositoryName string `mapstructure:"repository"`
	Description    string `mapstructure:"description"`
	Private        bool   `mapstructure:"private"`
	UseSSH         bool   `mapstructure:"use_ssh"`
	RemoteHost     string `mapstructure:"remote_host"`
}

// DefaultCommandConfiguration provides baseline configuration values for launch.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Owner:          "",
		RepositoryName: "",
		Description:    "",
		Private:        false,
		UseSSH:         false,
		RemoteHost:     "",
	}
}

// DefaultConfigurationValues exposes configuration defaults keyed for the loader.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + ".owner":       defaults.Owner,
		configurationKey + ".repository":  defaults.RepositoryName,
		configurationKey + ".description": defaults.Description,
		configurationKey + ".private":     defaults.Private,
		configurationKey + ".use_ssh":     defaults.UseSSH,
		configurationKey + ".remote_host": defaults.RemoteHost,
	}
}

// sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Owner = strings.TrimSpace(configuration.Owner)
	sanitized.RepositoryName = strings.TrimSpace(configuration.RepositoryName)
	sanitized.Description = strings.TrimSpace(configuration.Description)
	sanitized.RemoteHost = strings.TrimSpace(configuration.RemoteHost)

	return sanitized
}
