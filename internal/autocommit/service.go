package autocommit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/execshell"
	"github.com/gitship/gitship/internal/gitrepo"
)

const (
	DefaultBranchNameConstant = "main"
	DefaultRemoteNameConstant = "origin"

	loggerMissingMessageConstant            = "commit-push logger not configured"
	executorMissingMessageConstant          = "commit-push command executor not configured"
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	remoteUnavailableTemplateConstant       = "remote %q is not configured and no remote url was provided"
	initializeErrorTemplateConstant         = "unable to initialize repository: %w"
	stageErrorTemplateConstant              = "unable to stage changes: %w"
	commitErrorTemplateConstant             = "unable to commit changes: %w"
	renameBranchErrorTemplateConstant       = "unable to rename branch: %w"
	addRemoteErrorTemplateConstant          = "unable to register remote: %w"
	pushErrorTemplateConstant               = "unable to push changes: %w"
	gitInitSubcommandConstant               = "init"
	gitAddSubcommandConstant                = "add"
	gitStageAllPathspecConstant             = "."
	gitCommitSubcommandConstant             = "commit"
	gitMessageFlagConstant                  = "-m"
	gitBranchSubcommandConstant             = "branch"
	gitForceRenameFlagConstant              = "-M"
	gitPushSubcommandConstant               = "push"
	gitSetUpstreamFlagConstant              = "-u"
	logMessageRepositoryInitializedConstant = "Repository initialized"
	logMessageNoChangesConstant             = "No pending changes detected"
	logMessageChangesDetectedConstant       = "Pending changes detected"
	logMessageDryRunConstant                = "Dry run requested, skipping git mutations"
	logMessageCommitCreatedConstant         = "Commit created"
	logMessageChangesPushedConstant         = "Changes pushed"
	logFieldRepositoryPathConstant          = "repository_path"
	logFieldFilesChangedConstant            = "files_changed"
	logFieldInsertionsConstant              = "insertions"
	logFieldDeletionsConstant               = "deletions"
	logFieldCommitMessageConstant           = "commit_message"
	logFieldBranchNameConstant              = "branch"
	logFieldRemoteNameConstant              = "remote"
)

// CommandExecutor runs git commands on behalf of the commit-push service.
type CommandExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Sentinel errors surfaced during service construction.
var (
	ErrLoggerMissing            = errors.New(loggerMissingMessageConstant)
	ErrExecutorMissing          = errors.New(executorMissingMessageConstant)
	ErrRepositoryManagerMissing = errors.New(repositoryManagerMissingMessageConstant)
)

// ServiceDependencies describes required collaborators for commit-push.
type ServiceDependencies struct {
	Logger            *zap.Logger
	Executor          CommandExecutor
	RepositoryManager *gitrepo.RepositoryManager
}

// CommitPushOptions configures a single commit-push run.
type CommitPushOptions struct {
	WorkingDirectory string
	BranchName       string
	RemoteName       string
	RemoteURL        string
	CommitMessage    string
	DryRun           bool
}

// CommitPushResult captures the observable outcomes of a commit-push run.
type CommitPushResult struct {
	Initialized      bool
	ChangesDetected  bool
	DryRun           bool
	CommitMessage    string
	Summary          WorktreeSummary
	Statistics       ChangeStatistics
	RemoteConfigured bool
	Pushed           bool
}

// Service commits pending worktree changes and pushes them to the configured remote.
type Service struct {
	logger    *zap.Logger
	executor  CommandExecutor
	manager   *gitrepo.RepositoryManager
	inspector *WorktreeInspector
}

// NewService constructs a commit-push Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Logger == nil {
		return nil, ErrLoggerMissing
	}
	if dependencies.Executor == nil {
		return nil, ErrExecutorMissing
	}
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerMissing
	}

	inspector, inspectorError := NewWorktreeInspector(dependencies.Executor)
	if inspectorError != nil {
		return nil, inspectorError
	}

	return &Service{
		logger:    dependencies.Logger,
		executor:  dependencies.Executor,
		manager:   dependencies.RepositoryManager,
		inspector: inspector,
	}, nil
}

// CommitPush inspects the worktree, commits pending changes with the supplied
// or a generated message, and pushes the branch upstream. A missing repository
// is initialized first. Dry runs report what would happen without mutating
// anything.
func (service *Service) CommitPush(executionContext context.Context, options CommitPushOptions) (CommitPushResult, error) {
	normalizedOptions := normalizeCommitPushOptions(options)
	result := CommitPushResult{DryRun: normalizedOptions.DryRun}

	insideWorkTree, workTreeError := service.manager.IsWorkingTree(executionContext, normalizedOptions.WorkingDirectory)
	if workTreeError != nil {
		return result, workTreeError
	}
	if !insideWorkTree {
		if normalizedOptions.DryRun {
			result.Initialized = true
			return result, nil
		}
		if initializeError := service.runGit(executionContext, normalizedOptions.WorkingDirectory, gitInitSubcommandConstant); initializeError != nil {
			return result, fmt.Errorf(initializeErrorTemplateConstant, initializeError)
		}
		result.Initialized = true
		service.logger.Info(
			logMessageRepositoryInitializedConstant,
			zap.String(logFieldRepositoryPathConstant, normalizedOptions.WorkingDirectory),
		)
	}

	summary, summaryError := service.inspector.Summarize(executionContext, normalizedOptions.WorkingDirectory)
	if summaryError != nil {
		return result, summaryError
	}
	result.Summary = summary

	statistics, statisticsError := service.inspector.CollectStatistics(executionContext, normalizedOptions.WorkingDirectory)
	if statisticsError != nil {
		return result, statisticsError
	}
	result.Statistics = statistics

	if !summary.HasChanges() {
		service.logger.Info(logMessageNoChangesConstant)
		return result, nil
	}
	result.ChangesDetected = true

	service.logger.Info(
		logMessageChangesDetectedConstant,
		zap.Int(logFieldFilesChangedConstant, statistics.FilesChanged),
		zap.Int(logFieldInsertionsConstant, statistics.Insertions),
		zap.Int(logFieldDeletionsConstant, statistics.Deletions),
	)

	commitMessage := normalizedOptions.CommitMessage
	if len(commitMessage) == 0 {
		commitMessage = GenerateCommitMessage(summary, statistics)
	}
	result.CommitMessage = commitMessage

	if normalizedOptions.DryRun {
		service.logger.Info(
			logMessageDryRunConstant,
			zap.String(logFieldCommitMessageConstant, commitMessage),
		)
		return result, nil
	}

	if stageError := service.runGit(executionContext, normalizedOptions.WorkingDirectory, gitAddSubcommandConstant, gitStageAllPathspecConstant); stageError != nil {
		return result, fmt.Errorf(stageErrorTemplateConstant, stageError)
	}

	if commitError := service.runGit(executionContext, normalizedOptions.WorkingDirectory, gitCommitSubcommandConstant, gitMessageFlagConstant, commitMessage); commitError != nil {
		return result, fmt.Errorf(commitErrorTemplateConstant, commitError)
	}

	service.logger.Info(
		logMessageCommitCreatedConstant,
		zap.String(logFieldCommitMessageConstant, commitMessage),
	)

	if renameError := service.runGit(executionContext, normalizedOptions.WorkingDirectory, gitBranchSubcommandConstant, gitForceRenameFlagConstant, normalizedOptions.BranchName); renameError != nil {
		return result, fmt.Errorf(renameBranchErrorTemplateConstant, renameError)
	}

	remoteConfigured, remoteError := service.ensureRemote(executionContext, normalizedOptions)
	if remoteError != nil {
		return result, remoteError
	}
	result.RemoteConfigured = remoteConfigured

	if pushError := service.runGit(executionContext, normalizedOptions.WorkingDirectory, gitPushSubcommandConstant, gitSetUpstreamFlagConstant, normalizedOptions.RemoteName, normalizedOptions.BranchName); pushError != nil {
		return result, fmt.Errorf(pushErrorTemplateConstant, pushError)
	}
	result.Pushed = true

	service.logger.Info(
		logMessageChangesPushedConstant,
		zap.String(logFieldRemoteNameConstant, normalizedOptions.RemoteName),
		zap.String(logFieldBranchNameConstant, normalizedOptions.BranchName),
	)

	return result, nil
}

// ensureRemote registers the remote when it is absent. An existing remote is
// left untouched even when a different URL was supplied.
func (service *Service) ensureRemote(executionContext context.Context, options CommitPushOptions) (bool, error) {
	existingRemoteURL, lookupError := service.manager.GetRemoteURL(executionContext, options.WorkingDirectory, options.RemoteName)
	if lookupError != nil {
		return false, lookupError
	}
	if len(existingRemoteURL) > 0 {
		return false, nil
	}

	if len(options.RemoteURL) == 0 {
		return false, fmt.Errorf(remoteUnavailableTemplateConstant, options.RemoteName)
	}

	if addError := service.manager.AddRemote(executionContext, options.WorkingDirectory, options.RemoteName, options.RemoteURL); addError != nil {
		return false, fmt.Errorf(addRemoteErrorTemplateConstant, addError)
	}
	return true, nil
}

func (service *Service) runGit(executionContext context.Context, workingDirectory string, arguments ...string) error {
	_, executionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: workingDirectory,
	})
	return executionError
}

func normalizeCommitPushOptions(options CommitPushOptions) CommitPushOptions {
	normalized := options

	normalized.BranchName = strings.TrimSpace(options.BranchName)
	if len(normalized.BranchName) == 0 {
		normalized.BranchName = DefaultBranchNameConstant
	}

	normalized.RemoteName = strings.TrimSpace(options.RemoteName)
	if len(normalized.RemoteName) == 0 {
		normalized.RemoteName = DefaultRemoteNameConstant
	}

	normalized.RemoteURL = strings.TrimSpace(options.RemoteURL)
	normalized.CommitMessage = strings.TrimSpace(options.CommitMessage)

	return normalized
}
