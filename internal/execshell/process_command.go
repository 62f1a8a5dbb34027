package execshell

const (
	commandKindShellStringConstant    = "shell"
	commandKindExecStringConstant     = "exec"
	commandKindRedirectStringConstant = "exec-redirect"
	exitOutcomeZeroStringConstant     = "normal_exit_zero"
	exitOutcomeNonzeroStringConstant  = "normal_exit_nonzero"
	exitOutcomeAbnormalStringConstant = "abnormal_termination"
	abnormalExitCodeConstant          = -1
)

// CommandKind identifies how a ProcessCommand is launched.
type CommandKind string

// Supported command kinds.
const (
	CommandKindShell    CommandKind = CommandKind(commandKindShellStringConstant)
	CommandKindExec     CommandKind = CommandKind(commandKindExecStringConstant)
	CommandKindRedirect CommandKind = CommandKind(commandKindRedirectStringConstant)
)

// ProcessCommand describes a single process invocation.
type ProcessCommand struct {
	Kind        CommandKind
	CommandLine string
	Arguments   []string
	OutputFile  string
}

// ExecutablePath returns the first element of the argument vector.
func (command ProcessCommand) ExecutablePath() string {
	if len(command.Arguments) == 0 {
		return ""
	}
	return command.Arguments[0]
}

// ExitOutcome classifies how a spawned process terminated.
type ExitOutcome int

// Recognized exit outcomes.
const (
	NormalExitZero ExitOutcome = iota
	NormalExitNonzero
	AbnormalTermination
)

// String renders the outcome for log fields.
func (outcome ExitOutcome) String() string {
	switch outcome {
	case NormalExitZero:
		return exitOutcomeZeroStringConstant
	case NormalExitNonzero:
		return exitOutcomeNonzeroStringConstant
	default:
		return exitOutcomeAbnormalStringConstant
	}
}

// ExecutionResult captures the observable termination of a process.
type ExecutionResult struct {
	Outcome           ExitOutcome
	ExitCode          int
	ProcessIdentifier int
}

// Succeeded reports whether the process exited normally with status zero.
func (result ExecutionResult) Succeeded() bool {
	return result.Outcome == NormalExitZero && result.ExitCode == 0
}

// ClassifyExit decomposes a raw termination into an ExitOutcome.
// A process that did not exit on its own (for example, one killed by a signal) is abnormal.
func ClassifyExit(exitedNormally bool, exitCode int) ExecutionResult {
	if !exitedNormally {
		return ExecutionResult{Outcome: AbnormalTermination, ExitCode: abnormalExitCodeConstant}
	}
	if exitCode == 0 {
		return ExecutionResult{Outcome: NormalExitZero}
	}
	return ExecutionResult{Outcome: NormalExitNonzero, ExitCode: exitCode}
}
