package execshell

// CommandEventObserver receives lifecycle notifications for process execution.
type CommandEventObserver interface {
	// CommandStarted notifies observers that a process is about to be spawned.
	CommandStarted(command ProcessCommand)
	// CommandCompleted notifies observers that the process terminated and supplies the result.
	CommandCompleted(command ProcessCommand, result ExecutionResult)
	// CommandExecutionFailed reports failures that prevented an exit status from being observed.
	CommandExecutionFailed(command ProcessCommand, failure error)
}

// noopCommandEventObserver discards all command events.
type noopCommandEventObserver struct{}

// CommandStarted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandStarted(ProcessCommand) {}

// CommandCompleted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandCompleted(ProcessCommand, ExecutionResult) {}

// CommandExecutionFailed implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandExecutionFailed(ProcessCommand, error) {}
