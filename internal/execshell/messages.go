package execshell

import (
	"fmt"
	"strings"
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	currentDirectoryLabelConstant           = "current directory"
)

const (
	gitInitSubcommandNameConstant      = "init"
	gitAddSubcommandNameConstant       = "add"
	gitCommitSubcommandNameConstant    = "commit"
	gitBranchSubcommandNameConstant    = "branch"
	gitRemoteSubcommandNameConstant    = "remote"
	gitPushSubcommandNameConstant      = "push"
	gitStatusSubcommandNameConstant    = "status"
	gitDiffSubcommandNameConstant      = "diff"
	gitLSFilesSubcommandNameConstant   = "ls-files"
	gitLogSubcommandNameConstant       = "log"
	gitRevParseSubcommandNameConstant  = "rev-parse"
	gitRemoteAddActionNameConstant     = "add"
	gitRemoteGetURLActionNameConstant  = "get-url"
	gitCommitMessageFlagConstant       = "-m"
	gitBranchRenameFlagConstant        = "-M"
	gitInitStartTemplateConstant       = "Initializing Git repository in %s"
	gitInitSuccessTemplateConstant     = "Initialized Git repository in %s"
	gitAddStartTemplateConstant        = "Staging changes in %s"
	gitAddSuccessTemplateConstant      = "Staged changes in %s"
	gitCommitStartTemplateConstant     = "Creating commit in %s with message %q"
	gitCommitSuccessTemplateConstant   = "Created commit in %s with message %q"
	gitBranchStartTemplateConstant     = "Renaming primary branch to %s in %s"
	gitBranchSuccessTemplateConstant   = "Renamed primary branch to %s in %s"
	gitRemoteAddStartTemplateConstant  = "Registering remote %s in %s"
	gitRemoteAddDoneTemplateConstant   = "Registered remote %s in %s"
	gitRemoteReadStartTemplateConstant = "Checking remote %s in %s"
	gitRemoteReadDoneTemplateConstant  = "Checked remote %s in %s"
	gitPushStartTemplateConstant       = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant     = "Pushed %s to %s from %s"
	gitQueryStartTemplateConstant      = "Inspecting repository state in %s"
	gitQuerySuccessTemplateConstant    = "Inspected repository state in %s"
	failureSuffixTemplateConstant      = " (exit code %d%s)"
	failurePrefixConstant              = "Failed: "
	executionFailurePrefixConstant     = "Unable to run: "
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildCompletionMessage formats the message matching the result's exit code.
func (formatter CommandMessageFormatter) BuildCompletionMessage(command ShellCommand, result ExecutionResult) string {
	if result.ExitCode == 0 {
		return formatter.BuildSuccessMessage(command)
	}
	return formatter.BuildFailureMessage(command, result)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name == CommandGit {
		if gitMessage, recognized := formatter.buildGitMessage(command, result, failure, stage); recognized {
			return gitMessage
		}
	}
	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) buildGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) (string, bool) {
	arguments := command.Details.Arguments
	if len(arguments) == 0 {
		return emptyStringConstant, false
	}

	workingDirectoryLabel := formatter.workingDirectoryLabel(command)

	var startMessage string
	var successMessage string

	switch arguments[0] {
	case gitInitSubcommandNameConstant:
		startMessage = fmt.Sprintf(gitInitStartTemplateConstant, workingDirectoryLabel)
		successMessage = fmt.Sprintf(gitInitSuccessTemplateConstant, workingDirectoryLabel)
	case gitAddSubcommandNameConstant:
		startMessage = fmt.Sprintf(gitAddStartTemplateConstant, workingDirectoryLabel)
		successMessage = fmt.Sprintf(gitAddSuccessTemplateConstant, workingDirectoryLabel)
	case gitCommitSubcommandNameConstant:
		commitMessage := formatter.flagValue(arguments, gitCommitMessageFlagConstant)
		startMessage = fmt.Sprintf(gitCommitStartTemplateConstant, workingDirectoryLabel, commitMessage)
		successMessage = fmt.Sprintf(gitCommitSuccessTemplateConstant, workingDirectoryLabel, commitMessage)
	case gitBranchSubcommandNameConstant:
		branchName := formatter.flagValue(arguments, gitBranchRenameFlagConstant)
		if len(branchName) == 0 {
			return emptyStringConstant, false
		}
		startMessage = fmt.Sprintf(gitBranchStartTemplateConstant, branchName, workingDirectoryLabel)
		successMessage = fmt.Sprintf(gitBranchSuccessTemplateConstant, branchName, workingDirectoryLabel)
	case gitRemoteSubcommandNameConstant:
		remoteMessagePair, recognized := formatter.buildGitRemoteMessages(arguments, workingDirectoryLabel)
		if !recognized {
			return emptyStringConstant, false
		}
		startMessage = remoteMessagePair[0]
		successMessage = remoteMessagePair[1]
	case gitPushSubcommandNameConstant:
		remoteName, referenceName := formatter.pushTargets(arguments)
		startMessage = fmt.Sprintf(gitPushStartTemplateConstant, referenceName, remoteName, workingDirectoryLabel)
		successMessage = fmt.Sprintf(gitPushSuccessTemplateConstant, referenceName, remoteName, workingDirectoryLabel)
	case gitStatusSubcommandNameConstant, gitDiffSubcommandNameConstant, gitLSFilesSubcommandNameConstant, gitLogSubcommandNameConstant, gitRevParseSubcommandNameConstant:
		startMessage = fmt.Sprintf(gitQueryStartTemplateConstant, workingDirectoryLabel)
		successMessage = fmt.Sprintf(gitQuerySuccessTemplateConstant, workingDirectoryLabel)
	default:
		return emptyStringConstant, false
	}

	switch stage {
	case messageStageStart:
		return startMessage, true
	case messageStageSuccess:
		return successMessage, true
	case messageStageFailure:
		failureSuffix := fmt.Sprintf(failureSuffixTemplateConstant, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		return failurePrefixConstant + startMessage + failureSuffix, true
	case messageStageExecutionFailure:
		return executionFailurePrefixConstant + startMessage + fmt.Sprintf(standardErrorSuffixTemplateConstant, formatter.failureText(failure)), true
	}

	return emptyStringConstant, false
}

func (formatter CommandMessageFormatter) buildGitRemoteMessages(arguments []string, workingDirectoryLabel string) ([2]string, bool) {
	if len(arguments) < 3 {
		return [2]string{}, false
	}
	remoteName := arguments[2]
	switch arguments[1] {
	case gitRemoteAddActionNameConstant:
		return [2]string{
			fmt.Sprintf(gitRemoteAddStartTemplateConstant, remoteName, workingDirectoryLabel),
			fmt.Sprintf(gitRemoteAddDoneTemplateConstant, remoteName, workingDirectoryLabel),
		}, true
	case gitRemoteGetURLActionNameConstant:
		return [2]string{
			fmt.Sprintf(gitRemoteReadStartTemplateConstant, remoteName, workingDirectoryLabel),
			fmt.Sprintf(gitRemoteReadDoneTemplateConstant, remoteName, workingDirectoryLabel),
		}, true
	}
	return [2]string{}, false
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.failureText(failure))
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)

	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, emptyStringConstant)
	}
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory))
}

func (formatter CommandMessageFormatter) workingDirectoryLabel(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return currentDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) failureText(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) flagValue(arguments []string, flagName string) string {
	for argumentIndex := 0; argumentIndex < len(arguments)-1; argumentIndex++ {
		if arguments[argumentIndex] == flagName {
			return arguments[argumentIndex+1]
		}
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) pushTargets(arguments []string) (string, string) {
	positionalArguments := make([]string, 0, len(arguments))
	for _, argument := range arguments[1:] {
		if strings.HasPrefix(argument, "-") {
			continue
		}
		positionalArguments = append(positionalArguments, argument)
	}
	remoteName := currentDirectoryLabelConstant
	referenceName := emptyStringConstant
	if len(positionalArguments) > 0 {
		remoteName = positionalArguments[0]
	}
	if len(positionalArguments) > 1 {
		referenceName = positionalArguments[1]
	}
	return remoteName, referenceName
}
