// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging and lifecycle observation via ShellExecutor,
// exposes OSCommandRunner for default process execution, and defines the
// abstractions gitship uses to run git in a testable manner.
package execshell
