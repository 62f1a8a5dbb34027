package execshell

import (
	"errors"
	"fmt"
)

const (
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	commandLineMissingMessageConstant         = "command line must be provided"
	argumentsMissingMessageConstant           = "executable path must be provided as the first argument"
	outputFileMissingMessageConstant          = "output file must be provided"
	unsupportedCommandKindTemplateConstant    = "unsupported command kind: %s"
	commandFailureTemplateConstant            = "%s: %s"
	commandFailureWithCauseTemplateConstant   = "%s: %s: %v"
	commandFailureWithCodeTemplateConstant    = "%s: %s (exit code %d)"
)

const (
	failureKindInvalidArgumentStringConstant    = "invalid_argument"
	failureKindSpawnStringConstant              = "spawn_failure"
	failureKindProgramReplacementStringConstant = "program_replacement_failure"
	failureKindFileSetupStringConstant          = "file_setup_failure"
	failureKindWaitStringConstant               = "wait_failure"
	failureKindNonZeroExitStringConstant        = "nonzero_exit"
	failureKindAbnormalStringConstant           = "abnormal_termination"
)

var (
	// ErrLoggerNotConfigured indicates a ProcessExecutor was built without a logger.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

	// ErrCommandRunnerNotConfigured indicates a ProcessExecutor was built without a runner.
	ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

	// ErrCommandLineMissing indicates an empty shell command line.
	ErrCommandLineMissing = errors.New(commandLineMissingMessageConstant)

	// ErrArgumentsMissing indicates an empty argument vector or executable path.
	ErrArgumentsMissing = errors.New(argumentsMissingMessageConstant)

	// ErrOutputFileMissing indicates an empty redirect target.
	ErrOutputFileMissing = errors.New(outputFileMissingMessageConstant)
)

// FailureKind classifies why an invocation did not succeed.
type FailureKind string

// Failure kinds reported by CommandFailure.
const (
	FailureKindInvalidArgument    FailureKind = FailureKind(failureKindInvalidArgumentStringConstant)
	FailureKindSpawn              FailureKind = FailureKind(failureKindSpawnStringConstant)
	FailureKindProgramReplacement FailureKind = FailureKind(failureKindProgramReplacementStringConstant)
	FailureKindFileSetup          FailureKind = FailureKind(failureKindFileSetupStringConstant)
	FailureKindWait               FailureKind = FailureKind(failureKindWaitStringConstant)
	FailureKindNonZeroExit        FailureKind = FailureKind(failureKindNonZeroExitStringConstant)
	FailureKindAbnormal           FailureKind = FailureKind(failureKindAbnormalStringConstant)
)

// CommandFailure describes an invocation that did not exit normally with status zero.
type CommandFailure struct {
	Kind    FailureKind
	Command ProcessCommand
	Result  ExecutionResult
	Cause   error
}

// Error renders the failure with the command label and, when known, the cause or exit code.
func (failure CommandFailure) Error() string {
	label := describeCommand(failure.Command)
	switch {
	case failure.Cause != nil:
		return fmt.Sprintf(commandFailureWithCauseTemplateConstant, label, failure.Kind, failure.Cause)
	case failure.Kind == FailureKindNonZeroExit:
		return fmt.Sprintf(commandFailureWithCodeTemplateConstant, label, failure.Kind, failure.Result.ExitCode)
	default:
		return fmt.Sprintf(commandFailureTemplateConstant, label, failure.Kind)
	}
}

// Unwrap exposes the underlying cause.
func (failure CommandFailure) Unwrap() error {
	return failure.Cause
}

// FailureKindOf extracts the FailureKind carried by an error, if any.
func FailureKindOf(candidate error) (FailureKind, bool) {
	var failure CommandFailure
	if errors.As(candidate, &failure) {
		return failure.Kind, true
	}
	return "", false
}

func newInvalidArgumentFailure(command ProcessCommand, cause error) CommandFailure {
	return CommandFailure{Kind: FailureKindInvalidArgument, Command: command, Cause: cause}
}

func newExitFailure(command ProcessCommand, result ExecutionResult) error {
	switch result.Outcome {
	case NormalExitZero:
		return nil
	case NormalExitNonzero:
		return CommandFailure{Kind: FailureKindNonZeroExit, Command: command, Result: result}
	default:
		return CommandFailure{Kind: FailureKindAbnormal, Command: command, Result: result}
	}
}
