package autocommit

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/execshell"
	"github.com/gitship/gitship/internal/gitrepo"
	pathutils "github.com/gitship/gitship/internal/utils/path"
)

const (
	commandUseConstant                    = "commit-push"
	commandShortDescriptionConstant       = "Commit pending changes and push them to the configured remote"
	commandLongDescriptionConstant        = "commit-push stages every pending change, commits it with a supplied or generated message, and pushes the branch upstream."
	commandExecutionErrorTemplateConstant = "commit-push failed: %w"
	unexpectedArgumentsMessageConstant    = "commit-push does not accept positional arguments"
	dryRunSummaryTemplateConstant         = "Dry run: %d files would be committed as %q\n"
	noChangesMessageConstant              = "No changes detected in repository"
	flagMessageNameConstant               = "message"
	flagMessageDescriptionConstant        = "Commit message to use instead of the generated one"
	flagDryRunNameConstant                = "dry-run"
	flagDryRunDescriptionConstant         = "Report pending changes without committing or pushing"
	flagBranchNameConstant                = "branch"
	flagBranchDescriptionConstant         = "Branch name to push"
	flagRemoteNameConstant                = "remote"
	flagRemoteDescriptionConstant         = "Name of the remote to push to"
	flagRemoteURLNameConstant             = "remote-url"
	flagRemoteURLDescriptionConstant      = "URL registered when the remote is missing"
	flagDirectoryNameConstant             = "directory"
	flagDirectoryDescriptionConstant      = "Repository directory (defaults to the current directory)"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies configuration values for the commit-push command.
type ConfigurationProvider func() CommandConfiguration

// CommandEventObserverProvider supplies an optional observer for executed commands.
type CommandEventObserverProvider func() execshell.CommandEventObserver

// CommandBuilder assembles the Cobra command for commit-push.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ObserverProvider      CommandEventObserverProvider
	Executor              CommandExecutor
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs the commit-push command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	configuration := builder.resolveConfiguration()

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().StringP(flagMessageNameConstant, "m", "", flagMessageDescriptionConstant)
	command.Flags().Bool(flagDryRunNameConstant, false, flagDryRunDescriptionConstant)
	command.Flags().String(flagBranchNameConstant, configuration.BranchName, flagBranchDescriptionConstant)
	command.Flags().String(flagRemoteNameConstant, configuration.RemoteName, flagRemoteDescriptionConstant)
	command.Flags().String(flagRemoteURLNameConstant, configuration.RemoteURL, flagRemoteURLDescriptionConstant)
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

	repositoryManager, managerError := gitrepo.NewRepositoryManager(executor)
	if managerError != nil {
		return managerError
	}

	service, serviceError := NewService(ServiceDependencies{
		Logger:            logger,
		Executor:          executor,
		RepositoryManager: repositoryManager,
	})
	if serviceError != nil {
		return serviceError
	}

	result, commitPushError := service.CommitPush(command.Context(), options)
	if commitPushError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, commitPushError)
	}

	if !result.ChangesDetected {
		fmt.Fprintln(command.OutOrStdout(), noChangesMessageConstant)
		return nil
	}
	if result.DryRun {
		fmt.Fprintf(command.OutOrStdout(), dryRunSummaryTemplateConstant, result.Statistics.FilesChanged, result.CommitMessage)
	}

	return nil
}

// parseOptions prefers explicitly set flags and falls back to the loaded
// configuration, which is resolved after command construction.
func (builder *CommandBuilder) parseOptions(command *cobra.Command) CommitPushOptions {
	configuration := builder.resolveConfiguration()

	messageValue, _ := command.Flags().GetString(flagMessageNameConstant)
	dryRunValue, _ := command.Flags().GetBool(flagDryRunNameConstant)
	directoryValue, _ := command.Flags().GetString(flagDirectoryNameConstant)

	branchValue := configuration.BranchName
	if command.Flags().Changed(flagBranchNameConstant) {
		branchValue, _ = command.Flags().GetString(flagBranchNameConstant)
	}
	remoteNameValue := configuration.RemoteName
	if command.Flags().Changed(flagRemoteNameConstant) {
		remoteNameValue, _ = command.Flags().GetString(flagRemoteNameConstant)
	}
	remoteURLValue := configuration.RemoteURL
	if command.Flags().Changed(flagRemoteURLNameConstant) {
		remoteURLValue, _ = command.Flags().GetString(flagRemoteURLNameConstant)
	}

	workingDirectory := directoryValue
	if builder.HomeExpander != nil {
		workingDirectory = builder.HomeExpander.Expand(workingDirectory)
	}

	return CommitPushOptions{
		WorkingDirectory: workingDirectory,
		BranchName:       branchValue,
		RemoteName:       remoteNameValue,
		RemoteURL:        remoteURLValue,
		CommitMessage:    messageValue,
		DryRun:           dryRunValue,
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
