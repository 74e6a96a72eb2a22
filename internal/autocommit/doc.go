// Package autocommit commits pending worktree changes with generated
// conventional-commit messages and pushes them upstream.
package autocommit
