package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/execshell"
)

const (
	DefaultRemoteNameConstant    = "origin"
	DefaultBranchNameConstant    = "main"
	DefaultCommitMessageConstant = "Initial commit"

	StepInitializeConstant   = "initialize"
	StepStageConstant        = "stage"
	StepCommitConstant       = "commit"
	StepRenameBranchConstant = "rename_branch"
	StepAddRemoteConstant    = "add_remote"
	StepPushConstant         = "push"

	gitInitSubcommandConstant         = "init"
	gitAddSubcommandConstant          = "add"
	gitCommitSubcommandConstant       = "commit"
	gitBranchSubcommandConstant       = "branch"
	gitRemoteSubcommandConstant       = "remote"
	gitPushSubcommandConstant         = "push"
	gitStageAllPathspecConstant       = "."
	gitMessageFlagConstant            = "-m"
	gitForceRenameFlagConstant        = "-M"
	gitRemoteAddSubcommandConstant    = "add"
	gitSetUpstreamFlagConstant        = "-u"
	gitTerminalPromptVariableConstant = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptDisabledConstant = "0"

	loggerMissingMessageConstant      = "publish logger not configured"
	executorMissingMessageConstant    = "publish command executor not configured"
	remoteURLRequiredMessageConstant  = "remote url must be provided"
	stepFailedTemplateConstant        = "%s step failed: %w"
	stepsFailedTemplateConstant       = "%d of %d publish steps failed"
	logMessagePublishStartedConstant  = "Publishing repository"
	logMessagePublishFinishedConstant = "Repository published"
	logFieldRemoteURLConstant         = "remote_url"
	logFieldBranchNameConstant        = "branch"
	logFieldWorkingDirectoryConstant  = "working_directory"
)

// CommandExecutor runs git commands on behalf of the publish service.
type CommandExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Sentinel errors surfaced during service construction and validation.
var (
	ErrLoggerMissing     = errors.New(loggerMissingMessageConstant)
	ErrExecutorMissing   = errors.New(executorMissingMessageConstant)
	ErrRemoteURLRequired = errors.New(remoteURLRequiredMessageConstant)
)

// PublishOptions configures a single publish run.
type PublishOptions struct {
	WorkingDirectory  string
	RemoteURL         string
	RemoteName        string
	BranchName        string
	CommitMessage     string
	ContinueOnFailure bool
}

// StepOutcome records the observable result of one publish step.
type StepOutcome struct {
	StepName         string
	CommandArguments []string
	ExitCode         int
	FailureError     error
}

// Succeeded reports whether the step completed without error.
func (outcome StepOutcome) Succeeded() bool {
	return outcome.FailureError == nil
}

// PublishResult captures the outcomes of every attempted step.
type PublishResult struct {
	StepOutcomes []StepOutcome
}

// FailedSteps returns the outcomes of steps that did not succeed.
func (result PublishResult) FailedSteps() []StepOutcome {
	failed := make([]StepOutcome, 0, len(result.StepOutcomes))
	for _, outcome := range result.StepOutcomes {
		if !outcome.Succeeded() {
			failed = append(failed, outcome)
		}
	}
	return failed
}

type publishStep struct {
	name      string
	arguments []string
}

// Service drives the fixed sequence of git commands that turns a directory
// into a published repository.
type Service struct {
	logger   *zap.Logger
	executor CommandExecutor
}

// NewService constructs a publish Service.
func NewService(logger *zap.Logger, executor CommandExecutor) (*Service, error) {
	if logger == nil {
		return nil, ErrLoggerMissing
	}
	if executor == nil {
		return nil, ErrExecutorMissing
	}
	return &Service{logger: logger, executor: executor}, nil
}

// Publish runs the six publish steps in order: initialize the repository,
// stage the worktree, create the initial commit, rename the current branch,
// register the remote, and push with upstream tracking. Each step runs exactly
// once. The first failure halts the sequence unless ContinueOnFailure is set.
func (service *Service) Publish(executionContext context.Context, options PublishOptions) (PublishResult, error) {
	normalizedOptions, validationError := normalizeOptions(options)
	if validationError != nil {
		return PublishResult{}, validationError
	}

	service.logger.Debug(
		logMessagePublishStartedConstant,
		zap.String(logFieldRemoteURLConstant, normalizedOptions.RemoteURL),
		zap.String(logFieldBranchNameConstant, normalizedOptions.BranchName),
		zap.String(logFieldWorkingDirectoryConstant, normalizedOptions.WorkingDirectory),
	)

	publishSteps := buildPublishSteps(normalizedOptions)
	result := PublishResult{StepOutcomes: make([]StepOutcome, 0, len(publishSteps))}

	for _, step := range publishSteps {
		outcome := service.executeStep(executionContext, normalizedOptions.WorkingDirectory, step)
		result.StepOutcomes = append(result.StepOutcomes, outcome)

		if outcome.Succeeded() {
			continue
		}
		if !normalizedOptions.ContinueOnFailure {
			return result, fmt.Errorf(stepFailedTemplateConstant, step.name, outcome.FailureError)
		}
	}

	failedSteps := result.FailedSteps()
	if len(failedSteps) > 0 {
		return result, fmt.Errorf(stepsFailedTemplateConstant, len(failedSteps), len(publishSteps))
	}

	service.logger.Info(
		logMessagePublishFinishedConstant,
		zap.String(logFieldRemoteURLConstant, normalizedOptions.RemoteURL),
		zap.String(logFieldBranchNameConstant, normalizedOptions.BranchName),
	)

	return result, nil
}

func (service *Service) executeStep(executionContext context.Context, workingDirectory string, step publishStep) StepOutcome {
	executionResult, executionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            step.arguments,
		WorkingDirectory:     workingDirectory,
		EnvironmentVariables: map[string]string{gitTerminalPromptVariableConstant: gitTerminalPromptDisabledConstant},
	})

	outcome := StepOutcome{
		StepName:         step.name,
		CommandArguments: step.arguments,
		ExitCode:         executionResult.ExitCode,
		FailureError:     executionError,
	}

	var commandFailure execshell.CommandFailedError
	if errors.As(executionError, &commandFailure) {
		outcome.ExitCode = commandFailure.Result.ExitCode
	}

	return outcome
}

func normalizeOptions(options PublishOptions) (PublishOptions, error) {
	normalized := options

	normalized.RemoteURL = strings.TrimSpace(options.RemoteURL)
	if len(normalized.RemoteURL) == 0 {
		return PublishOptions{}, ErrRemoteURLRequired
	}

	normalized.RemoteName = strings.TrimSpace(options.RemoteName)
	if len(normalized.RemoteName) == 0 {
		normalized.RemoteName = DefaultRemoteNameConstant
	}

	normalized.BranchName = strings.TrimSpace(options.BranchName)
	if len(normalized.BranchName) == 0 {
		normalized.BranchName = DefaultBranchNameConstant
	}

	normalized.CommitMessage = strings.TrimSpace(options.CommitMessage)
	if len(normalized.CommitMessage) == 0 {
		normalized.CommitMessage = DefaultCommitMessageConstant
	}

	return normalized, nil
}

func buildPublishSteps(options PublishOptions) []publishStep {
	return []publishStep{
		{name: StepInitializeConstant, arguments: []string{gitInitSubcommandConstant}},
		{name: StepStageConstant, arguments: []string{gitAddSubcommandConstant, gitStageAllPathspecConstant}},
		{name: StepCommitConstant, arguments: []string{gitCommitSubcommandConstant, gitMessageFlagConstant, options.CommitMessage}},
		{name: StepRenameBranchConstant, arguments: []string{gitBranchSubcommandConstant, gitForceRenameFlagConstant, options.BranchName}},
		{name: StepAddRemoteConstant, arguments: []string{gitRemoteSubcommandConstant, gitRemoteAddSubcommandConstant, options.RemoteName, options.RemoteURL}},
		{name: StepPushConstant, arguments: []string{gitPushSubcommandConstant, gitSetUpstreamFlagConstant, options.RemoteName, options.BranchName}},
	}
}
