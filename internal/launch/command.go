package launch

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/execshell"
	"github.com/gitship/gitship/internal/githubapi"
	"github.com/gitship/gitship/internal/githubauth"
	"github.com/gitship/gitship/internal/publish"
	pathutils "github.com/gitship/gitship/internal/utils/path"
)

const (
	launchCommandUseConstant              = "launch"
	launchCommandShortConstant            = "Create a remote repository and push the current directory to it"
	launchCommandLongConstant             = "launch provisions a repository on GitHub, then initializes the local directory and pushes its initial commit to the new remote."
	launchExecutionErrorTemplateConstant  = "launch failed: %w"
	unexpectedArgumentsMessageConstant    = "command does not accept positional arguments"
	tokenMissingMessageConstant           = "GITHUB_TOKEN environment variable must be set"
	flagOwnerNameConstant                 = "owner"
	flagOwnerDescriptionConstant          = "Account that owns the new repository"
	flagRepositoryNameConstant            = "repository"
	flagRepositoryDescriptionConstant     = "Name of the repository to create"
	flagDescriptionNameConstant           = "description"
	flagDescriptionDescriptionConstant    = "Description recorded on the new repository"
	flagPrivateNameConstant               = "private"
	flagPrivateDescriptionConstant        = "Create the repository as private"
	flagUseSSHNameConstant                = "ssh"
	flagUseSSHDescriptionConstant         = "Use an SSH remote URL instead of HTTPS"
	flagRemoteHostNameConstant            = "host"
	flagRemoteHostDescriptionConstant     = "Hostname used when deriving the remote URL"
	flagDirectoryNameConstant             = "directory"
	flagDirectoryDescriptionConstant      = "Directory to publish (defaults to the current directory)"
	flagBranchNameConstant                = "branch"
	flagBranchDescriptionConstant         = "Branch name for the initial push"
	flagRemoteNameConstant                = "remote"
	flagRemoteDescriptionConstant         = "Name under which the remote is registered"
	flagMessageNameConstant               = "message"
	flagMessageDescriptionConstant        = "Message for the initial commit"
	flagContinueNameConstant              = "continue-on-error"
	flagContinueDescriptionConstant       = "Attempt remaining publish steps after a step fails"
)

var (
	errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)
	errTokenMissing        = errors.New(tokenMissingMessageConstant)
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies configuration values for the launch command.
type ConfigurationProvider func() CommandConfiguration

// PublishConfigurationProvider supplies publish defaults reused by launch.
type PublishConfigurationProvider func() publish.CommandConfiguration

// CommandEventObserverProvider supplies an optional observer for executed commands.
type CommandEventObserverProvider func() execshell.CommandEventObserver

// CommandBuilder assembles the Cobra command for the launch workflow.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        ConfigurationProvider
	PublishConfigurationProvider PublishConfigurationProvider
	ObserverProvider             CommandEventObserverProvider
	Provisioner                  githubapi.RepositoryProvisioner
	Executor                     publish.CommandExecutor
	HomeExpander                 *pathutils.HomeExpander
}

// Build constructs the launch command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	configuration := builder.resolveConfiguration()
	publishConfiguration := builder.resolvePublishConfiguration()

	command := &cobra.Command{
		Use:   launchCommandUseConstant,
		Short: launchCommandShortConstant,
		Long:  launchCommandLongConstant,
		RunE:  builder.run,
	}

	registerProvisionFlags(command, configuration)
	command.Flags().String(flagDirectoryNameConstant, "", flagDirectoryDescriptionConstant)
	command.Flags().String(flagBranchNameConstant, publishConfiguration.BranchName, flagBranchDescriptionConstant)
	command.Flags().String(flagRemoteNameConstant, publishConfiguration.RemoteName, flagRemoteDescriptionConstant)
	command.Flags().String(flagMessageNameConstant, publishConfiguration.CommitMessage, flagMessageDescriptionConstant)
	command.Flags().Bool(flagContinueNameConstant, publishConfiguration.ContinueOnError, flagContinueDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	options := builder.parseOptions(command)
	logger := builder.resolveLogger()

	provisioner, provisionerError := builder.resolveProvisioner()
	if provisionerError != nil {
		return provisionerError
	}

	publisher, publisherError := builder.resolvePublisher(logger)
	if publisherError != nil {
		return publisherError
	}

	service, serviceError := NewService(ServiceDependencies{
		Logger:      logger,
		Provisioner: provisioner,
		Publisher:   publisher,
	})
	if serviceError != nil {
		return serviceError
	}

	result, launchError := service.Launch(command.Context(), options)
	if launchError != nil {
		return fmt.Errorf(launchExecutionErrorTemplateConstant, launchError)
	}

	fmt.Fprintln(command.OutOrStdout(), result.RemoteURL)
	return nil
}

// parseOptions prefers explicitly set flags and falls back to the loaded
// configuration, which is resolved after command construction.
func (builder *CommandBuilder) parseOptions(command *cobra.Command) LaunchOptions {
	configuration := builder.resolveConfiguration()
	publishConfiguration := builder.resolvePublishConfiguration()

	ownerValue := stringOption(command, flagOwnerNameConstant, configuration.Owner)
	repositoryValue := stringOption(command, flagRepositoryNameConstant, configuration.RepositoryName)
	descriptionValue := stringOption(command, flagDescriptionNameConstant, configuration.Description)
	privateValue := boolOption(command, flagPrivateNameConstant, configuration.Private)
	useSSHValue := boolOption(command, flagUseSSHNameConstant, configuration.UseSSH)
	remoteHostValue := stringOption(command, flagRemoteHostNameConstant, configuration.RemoteHost)
	branchValue := stringOption(command, flagBranchNameConstant, publishConfiguration.BranchName)
	remoteNameValue := stringOption(command, flagRemoteNameConstant, publishConfiguration.RemoteName)
	messageValue := stringOption(command, flagMessageNameConstant, publishConfiguration.CommitMessage)
	continueValue := boolOption(command, flagContinueNameConstant, publishConfiguration.ContinueOnError)
	directoryValue, _ := command.Flags().GetString(flagDirectoryNameConstant)

	workingDirectory := directoryValue
	if builder.HomeExpander != nil {
		workingDirectory = builder.HomeExpander.Expand(workingDirectory)
	}

	return LaunchOptions{
		WorkingDirectory:  workingDirectory,
		Owner:             ownerValue,
		RepositoryName:    repositoryValue,
		Description:       descriptionValue,
		Private:           privateValue,
		UseSSH:            useSSHValue,
		RemoteHost:        remoteHostValue,
		RemoteName:        remoteNameValue,
		BranchName:        branchValue,
		CommitMessage:     messageValue,
		ContinueOnFailure: continueValue,
	}
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolvePublishConfiguration() publish.CommandConfiguration {
	if builder.PublishConfigurationProvider == nil {
		return publish.DefaultCommandConfiguration()
	}
	return builder.PublishConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveProvisioner() (githubapi.RepositoryProvisioner, error) {
	if builder.Provisioner != nil {
		return builder.Provisioner, nil
	}
	return resolveTokenProvisioner()
}

func (builder *CommandBuilder) resolvePublisher(logger *zap.Logger) (RepositoryPublisher, error) {
	executor := builder.Executor
	if executor == nil {
		commandRunner := execshell.NewOSCommandRunner()
		observers := make([]execshell.CommandEventObserver, 0, 1)
		if builder.ObserverProvider != nil {
			if observer := builder.ObserverProvider(); observer != nil {
				observers = append(observers, observer)
			}
		}
		shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, observers...)
		if creationError != nil {
			return nil, creationError
		}
		executor = shellExecutor
	}

	return publish.NewService(logger, executor)
}

func resolveTokenProvisioner() (githubapi.RepositoryProvisioner, error) {
	token, tokenFound := githubauth.ResolveToken(nil)
	if !tokenFound {
		return nil, ConfigurationError{Cause: errTokenMissing}
	}

	return githubapi.NewClient(token)
}

func stringOption(command *cobra.Command, flagName string, configuredValue string) string {
	if command.Flags().Changed(flagName) {
		flagValue, _ := command.Flags().GetString(flagName)
		return flagValue
	}
	return configuredValue
}

func boolOption(command *cobra.Command, flagName string, configuredValue bool) bool {
	if command.Flags().Changed(flagName) {
		flagValue, _ := command.Flags().GetBool(flagName)
		return flagValue
	}
	return configuredValue
}

func registerProvisionFlags(command *cobra.Command, configuration CommandConfiguration) {
	command.Flags().String(flagOwnerNameConstant, configuration.Owner, flagOwnerDescriptionConstant)
	command.Flags().String(flagRepositoryNameConstant, configuration.RepositoryName, flagRepositoryDescriptionConstant)
	command.Flags().String(flagDescriptionNameConstant, configuration.Description, flagDescriptionDescriptionConstant)
	command.Flags().Bool(flagPrivateNameConstant, configuration.Private, flagPrivateDescriptionConstant)
	command.Flags().Bool(flagUseSSHNameConstant, configuration.UseSSH, flagUseSSHDescriptionConstant)
	command.Flags().String(flagRemoteHostNameConstant, configuration.RemoteHost, flagRemoteHostDescriptionConstant)
}
