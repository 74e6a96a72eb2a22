package execshell

// CommandEventObserver receives lifecycle notifications while the executor
// runs a shell command. Observers must not block; they run synchronously on
// the executing goroutine.
type CommandEventObserver interface {
	// CommandStarted fires immediately before the command is spawned.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires after the command ran, regardless of exit code.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the command could not run at all.
	CommandExecutionFailed(command ShellCommand, failure error)
}
