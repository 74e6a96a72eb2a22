package publish

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/execshell"
	pathutils "github.com/gitship/gitship/internal/utils/path"
)

const (
	commandUseConstant                    = "publish"
	commandShortDescriptionConstant       = "Initialize the current directory and push it to an existing remote"
	commandLongDescriptionConstant        = "publish turns a directory into a Git repository and pushes its initial commit to an already provisioned remote."
	commandExecutionErrorTemplateConstant = "publish failed: %w"
	unexpectedArgumentsMessageConstant    = "publish does not accept positional arguments"
	flagRemoteURLNameConstant             = "remote-url"
	flagRemoteURLDescriptionConstant      = "URL of the remote repository to push to"
	flagBranchNameConstant                = "branch"
	flagBranchDescriptionConstant         = "Branch name for the initial push"
	flagRemoteNameConstant                = "remote"
	flagRemoteDescriptionConstant         = "Name under which the remote is registered"
	flagMessageNameConstant               = "message"
	flagMessageDescriptionConstant        = "Message for the initial commit"
	flagContinueNameConstant              = "continue-on-error"
	flagContinueDescriptionConstant       = "Attempt remaining steps after a step fails"
	flagDirectoryNameConstant             = "directory"
	flagDirectoryDescriptionConstant      = "Directory to publish (defaults to the current directory)"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies configuration values for the publish command.
type ConfigurationProvider func() CommandConfiguration

// CommandEventObserverProvider supplies an optional observer for executed commands.
type CommandEventObserverProvider func() execshell.CommandEventObserver

// CommandBuilder assembles the Cobra command for publishing a directory.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ObserverProvider      CommandEventObserverProvider
	Executor              CommandExecutor
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs the publish command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	configuration := builder.resolveConfiguration()

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagRemoteURLNameConstant, "", flagRemoteURLDescriptionConstant)
	command.Flags().String(flagBranchNameConstant, configuration.BranchName, flagBranchDescriptionConstant)
	command.Flags().String(flagRemoteNameConstant, configuration.RemoteName, flagRemoteDescriptionConstant)
	command.Flags().String(flagMessageNameConstant, configuration.CommitMessage, flagMessageDescriptionConstant)
	command.Flags().Bool(flagContinueNameConstant, configuration.ContinueOnError, flagContinueDescriptionConstant)
	command.Flags().String(flagDirectoryNameConstant, "", flagDirectoryDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	options := builder.parseOptions(command)

	logger := builder.resolveLogger()
	executor, executorError := builder.resolveExecutor(logger)
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(logger, executor)
	if serviceError != nil {
		return serviceError
	}

	_, publishError := service.Publish(command.Context(), options)
	if publishError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, publishError)
	}

	return nil
}

// parseOptions resolves each option from its flag when set and from the
// loaded configuration otherwise. Configuration becomes available only after
// the root command ran its initialization, so flag defaults registered at
// build time cannot carry configured values.
func (builder *CommandBuilder) parseOptions(command *cobra.Command) PublishOptions {
	configuration := builder.resolveConfiguration()

	remoteURLValue, _ := command.Flags().GetString(flagRemoteURLNameConstant)
	directoryValue, _ := command.Flags().GetString(flagDirectoryNameConstant)

	branchValue := configuration.BranchName
	if command.Flags().Changed(flagBranchNameConstant) {
		branchValue, _ = command.Flags().GetString(flagBranchNameConstant)
	}
	remoteNameValue := configuration.RemoteName
	if command.Flags().Changed(flagRemoteNameConstant) {
		remoteNameValue, _ = command.Flags().GetString(flagRemoteNameConstant)
	}
	messageValue := configuration.CommitMessage
	if command.Flags().Changed(flagMessageNameConstant) {
		messageValue, _ = command.Flags().GetString(flagMessageNameConstant)
	}
	continueValue := configuration.ContinueOnError
	if command.Flags().Changed(flagContinueNameConstant) {
		continueValue, _ = command.Flags().GetBool(flagContinueNameConstant)
	}

	workingDirectory := strings.TrimSpace(directoryValue)
	if builder.HomeExpander != nil {
		workingDirectory = builder.HomeExpander.Expand(workingDirectory)
	}

	return PublishOptions{
		WorkingDirectory:  workingDirectory,
		RemoteURL:         remoteURLValue,
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

	configuration := builder.ConfigurationProvider().sanitize()
	defaults := DefaultCommandConfiguration()
	if len(configuration.BranchName) == 0 {
		configuration.BranchName = defaults.BranchName
	}
	if len(configuration.RemoteName) == 0 {
		configuration.RemoteName = defaults.RemoteName
	}
	if len(configuration.CommitMessage) == 0 {
		configuration.CommitMessage = defaults.CommitMessage
	}

	return configuration
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

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (CommandExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

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

	return shellExecutor, nil
}
