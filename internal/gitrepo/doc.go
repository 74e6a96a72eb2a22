// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for inspecting worktrees, branches, and remotes,
// along with remote URL derivation and parsing consumed by the publish and
// commit-push services.
package gitrepo
