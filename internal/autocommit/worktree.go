package autocommit

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gitship/gitship/internal/execshell"
)

const (
	inspectorExecutorMissingMessageConstant = "worktree inspector executor not configured"
	gitLsFilesSubcommandConstant            = "ls-files"
	gitOthersFlagConstant                   = "--others"
	gitExcludeStandardFlagConstant          = "--exclude-standard"
	gitDeletedFlagConstant                  = "--deleted"
	gitDiffSubcommandConstant               = "diff"
	gitNameOnlyFlagConstant                 = "--name-only"
	gitCachedFlagConstant                   = "--cached"
	gitNumstatFlagConstant                  = "--numstat"
	binaryChangeMarkerConstant              = "-"
	numstatFieldSeparatorConstant           = "\t"
)

// ErrInspectorExecutorMissing indicates the inspector was constructed without an executor.
var ErrInspectorExecutorMissing = errors.New(inspectorExecutorMissingMessageConstant)

// WorktreeSummary groups pending repository changes by category.
type WorktreeSummary struct {
	UntrackedFiles []string
	ModifiedFiles  []string
	StagedFiles    []string
	DeletedFiles   []string
}

// HasChanges reports whether any category contains at least one file.
func (summary WorktreeSummary) HasChanges() bool {
	return len(summary.UntrackedFiles) > 0 ||
		len(summary.ModifiedFiles) > 0 ||
		len(summary.StagedFiles) > 0 ||
		len(summary.DeletedFiles) > 0
}

// AllFiles returns every pending file in category order. Duplicates are kept
// so counts line up with the per-category lists.
func (summary WorktreeSummary) AllFiles() []string {
	combined := make([]string, 0,
		len(summary.UntrackedFiles)+len(summary.ModifiedFiles)+len(summary.StagedFiles)+len(summary.DeletedFiles))
	combined = append(combined, summary.UntrackedFiles...)
	combined = append(combined, summary.ModifiedFiles...)
	combined = append(combined, summary.StagedFiles...)
	combined = append(combined, summary.DeletedFiles...)
	return combined
}

// ChangeStatistics aggregates line-level change counts across the worktree.
type ChangeStatistics struct {
	FilesChanged int
	Insertions   int
	Deletions    int
}

// WorktreeInspector collects pending-change summaries from a repository.
type WorktreeInspector struct {
	executor CommandExecutor
}

// NewWorktreeInspector constructs a WorktreeInspector backed by the provided executor.
func NewWorktreeInspector(executor CommandExecutor) (*WorktreeInspector, error) {
	if executor == nil {
		return nil, ErrInspectorExecutorMissing
	}
	return &WorktreeInspector{executor: executor}, nil
}

// Summarize gathers untracked, modified, staged, and deleted files.
func (inspector *WorktreeInspector) Summarize(executionContext context.Context, repositoryPath string) (WorktreeSummary, error) {
	untrackedFiles, untrackedError := inspector.listFiles(executionContext, repositoryPath,
		gitLsFilesSubcommandConstant, gitOthersFlagConstant, gitExcludeStandardFlagConstant)
	if untrackedError != nil {
		return WorktreeSummary{}, untrackedError
	}

	modifiedFiles, modifiedError := inspector.listFiles(executionContext, repositoryPath,
		gitDiffSubcommandConstant, gitNameOnlyFlagConstant)
	if modifiedError != nil {
		return WorktreeSummary{}, modifiedError
	}

	stagedFiles, stagedError := inspector.listFiles(executionContext, repositoryPath,
		gitDiffSubcommandConstant, gitCachedFlagConstant, gitNameOnlyFlagConstant)
	if stagedError != nil {
		return WorktreeSummary{}, stagedError
	}

	deletedFiles, deletedError := inspector.listFiles(executionContext, repositoryPath,
		gitLsFilesSubcommandConstant, gitDeletedFlagConstant)
	if deletedError != nil {
		return WorktreeSummary{}, deletedError
	}

	return WorktreeSummary{
		UntrackedFiles: untrackedFiles,
		ModifiedFiles:  modifiedFiles,
		StagedFiles:    stagedFiles,
		DeletedFiles:   deletedFiles,
	}, nil
}

// CollectStatistics aggregates numstat output for unstaged changes, falling
// back to staged changes when the unstaged diff is empty.
func (inspector *WorktreeInspector) CollectStatistics(executionContext context.Context, repositoryPath string) (ChangeStatistics, error) {
	numstatOutput, unstagedError := inspector.capture(executionContext, repositoryPath,
		gitDiffSubcommandConstant, gitNumstatFlagConstant)
	if unstagedError != nil {
		return ChangeStatistics{}, unstagedError
	}

	if len(strings.TrimSpace(numstatOutput)) == 0 {
		stagedOutput, stagedError := inspector.capture(executionContext, repositoryPath,
			gitDiffSubcommandConstant, gitCachedFlagConstant, gitNumstatFlagConstant)
		if stagedError != nil {
			return ChangeStatistics{}, stagedError
		}
		numstatOutput = stagedOutput
	}

	return parseNumstat(numstatOutput), nil
}

func (inspector *WorktreeInspector) listFiles(executionContext context.Context, repositoryPath string, arguments ...string) ([]string, error) {
	output, captureError := inspector.capture(executionContext, repositoryPath, arguments...)
	if captureError != nil {
		return nil, captureError
	}
	return splitNonEmptyLines(output), nil
}

func (inspector *WorktreeInspector) capture(executionContext context.Context, repositoryPath string, arguments ...string) (string, error) {
	executionResult, executionError := inspector.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return executionResult.StandardOutput, nil
}

func parseNumstat(output string) ChangeStatistics {
	statistics := ChangeStatistics{}
	for _, line := range splitNonEmptyLines(output) {
		fields := strings.Split(line, numstatFieldSeparatorConstant)
		if len(fields) < 2 {
			continue
		}
		statistics.Insertions += parseChangeCount(fields[0])
		statistics.Deletions += parseChangeCount(fields[1])
		statistics.FilesChanged++
	}
	return statistics
}

func parseChangeCount(field string) int {
	if field == binaryChangeMarkerConstant {
		return 0
	}
	count, parseError := strconv.Atoi(strings.TrimSpace(field))
	if parseError != nil {
		return 0
	}
	return count
}

func splitNonEmptyLines(output string) []string {
	lines := strings.Split(output, "\n")
	nonEmpty := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		nonEmpty = append(nonEmpty, trimmed)
	}
	return nonEmpty
}
