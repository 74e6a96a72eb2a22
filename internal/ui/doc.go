// Package ui renders human-readable progress for the git commands the CLI
// runs on the user's behalf. The console logger narrates each command start,
// success, and failure while structured telemetry continues to flow through
// zap, so console mode stays readable without losing diagnostic detail.
package ui
