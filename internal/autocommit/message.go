package autocommit

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	maximumCommitMessageLengthConstant = 72
	truncationSuffixConstant           = "..."
	emptyWorktreeMessageConstant       = "chore: update repository"
	commitTypeFeatureConstant          = "feat"
	commitTypeFixConstant              = "fix"
	commitTypeDocumentationConstant    = "docs"
	commitTypeTestConstant             = "test"
	commitActionAddConstant            = "add"
	commitActionUpdateConstant         = "update"
	fixKeywordConstant                 = "fix"
	testKeywordConstant                = "test"
	markdownExtensionConstant          = ".md"
	commitMessageTemplateConstant      = "%s%s: %s %d file%s"
	pluralSuffixConstant               = "s"
	scopeTemplateConstant              = "(%s)"
)

// GenerateCommitMessage derives a conventional-commit style message from the
// pending changes. The derivation is deterministic: the same summary and
// statistics always yield the same message.
func GenerateCommitMessage(summary WorktreeSummary, statistics ChangeStatistics) string {
	if statistics.FilesChanged == 0 {
		return emptyWorktreeMessageConstant
	}

	commitType := classifyCommitType(summary)
	commitScope := deriveScope(summary, statistics)
	commitAction := commitActionAddConstant
	if len(summary.ModifiedFiles) > 0 {
		commitAction = commitActionUpdateConstant
	}

	plural := ""
	if statistics.FilesChanged > 1 {
		plural = pluralSuffixConstant
	}

	message := fmt.Sprintf(commitMessageTemplateConstant, commitType, commitScope, commitAction, statistics.FilesChanged, plural)
	return TruncateCommitMessage(message)
}

// TruncateCommitMessage shortens messages that exceed the conventional length limit.
func TruncateCommitMessage(message string) string {
	if len(message) <= maximumCommitMessageLengthConstant {
		return message
	}
	return message[:maximumCommitMessageLengthConstant-len(truncationSuffixConstant)] + truncationSuffixConstant
}

func classifyCommitType(summary WorktreeSummary) string {
	allFiles := summary.AllFiles()

	if anyFileMatches(allFiles, func(file string) bool {
		return strings.Contains(strings.ToLower(file), fixKeywordConstant)
	}) {
		return commitTypeFixConstant
	}
	if anyFileMatches(allFiles, func(file string) bool {
		return strings.HasSuffix(file, markdownExtensionConstant)
	}) {
		return commitTypeDocumentationConstant
	}
	if anyFileMatches(allFiles, func(file string) bool {
		return strings.Contains(strings.ToLower(file), testKeywordConstant)
	}) {
		return commitTypeTestConstant
	}
	return commitTypeFeatureConstant
}

func deriveScope(summary WorktreeSummary, statistics ChangeStatistics) string {
	if statistics.FilesChanged != 1 {
		return ""
	}

	allFiles := summary.AllFiles()
	if len(allFiles) == 0 {
		return ""
	}

	fileName := filepath.Base(allFiles[0])
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if len(stem) == 0 {
		return ""
	}
	return fmt.Sprintf(scopeTemplateConstant, stem)
}

func anyFileMatches(files []string, predicate func(string) bool) bool {
	for _, file := range files {
		if predicate(file) {
			return true
		}
	}
	return false
}
