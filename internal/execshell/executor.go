package execshell

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	logFieldCommandKindConstant       = "command_kind"
	logFieldCommandLineConstant       = "command_line"
	logFieldArgumentsConstant         = "arguments"
	logFieldOutputFileConstant        = "output_file"
	logFieldExitCodeConstant          = "exit_code"
	logFieldOutcomeConstant           = "outcome"
	logFieldFailureKindConstant       = "failure_kind"
	logFieldProcessIdentifierConstant = "pid"
)

// ProcessRunner abstracts the operating system boundary so executor behavior can be exercised in tests.
type ProcessRunner interface {
	Run(command ProcessCommand) (ExecutionResult, error)
}

// ProcessExecutorOption customizes a ProcessExecutor.
type ProcessExecutorOption func(*ProcessExecutor)

// WithCommandEventObserver registers an observer notified about every invocation.
func WithCommandEventObserver(observer CommandEventObserver) ProcessExecutorOption {
	return func(executor *ProcessExecutor) {
		if observer != nil {
			executor.eventObserver = observer
		}
	}
}

// ProcessExecutor validates invocation requests, delegates them to a ProcessRunner, and reports the outcome.
type ProcessExecutor struct {
	logger           *zap.Logger
	runner           ProcessRunner
	eventObserver    CommandEventObserver
	messageFormatter CommandMessageFormatter
}

// NewProcessExecutor constructs a ProcessExecutor. Both the logger and the runner are required.
func NewProcessExecutor(logger *zap.Logger, runner ProcessRunner, options ...ProcessExecutorOption) (*ProcessExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	executor := &ProcessExecutor{
		logger:           logger,
		runner:           runner,
		eventObserver:    noopCommandEventObserver{},
		messageFormatter: CommandMessageFormatter{},
	}
	for _, option := range options {
		if option != nil {
			option(executor)
		}
	}

	return executor, nil
}

// ShellExecute hands commandLine to the platform shell and reports whether it exited with status zero.
func (executor *ProcessExecutor) ShellExecute(commandLine string) bool {
	_, executionError := executor.Run(ProcessCommand{Kind: CommandKindShell, CommandLine: commandLine})
	return executionError == nil
}

// Execute spawns arguments[0] with the full argument vector and reports whether it exited with status zero.
func (executor *ProcessExecutor) Execute(arguments []string) bool {
	_, executionError := executor.Run(ProcessCommand{Kind: CommandKindExec, Arguments: append([]string{}, arguments...)})
	return executionError == nil
}

// ExecuteWithRedirect behaves like Execute with the child's standard output written to outputFile.
// The file is created when absent and truncated when present.
func (executor *ProcessExecutor) ExecuteWithRedirect(outputFile string, arguments []string) bool {
	_, executionError := executor.Run(ProcessCommand{
		Kind:       CommandKindRedirect,
		Arguments:  append([]string{}, arguments...),
		OutputFile: outputFile,
	})
	return executionError == nil
}

// Run executes the command and returns a CommandFailure for every outcome other than a normal exit with status zero.
func (executor *ProcessExecutor) Run(command ProcessCommand) (ExecutionResult, error) {
	if validationError := validateCommand(command); validationError != nil {
		failure := newInvalidArgumentFailure(command, validationError)
		executor.reportExecutionFailure(command, failure)
		return ExecutionResult{}, failure
	}

	executor.eventObserver.CommandStarted(command)
	executor.logger.Info(executor.messageFormatter.BuildStartedMessage(command), executor.commandFields(command)...)

	result, runError := executor.runner.Run(command)
	if runError != nil {
		failure := ensureCommandFailure(command, runError)
		executor.reportExecutionFailure(command, failure)
		return ExecutionResult{}, failure
	}

	executor.eventObserver.CommandCompleted(command, result)

	resultFields := append(executor.commandFields(command),
		zap.String(logFieldOutcomeConstant, result.Outcome.String()),
		zap.Int(logFieldExitCodeConstant, result.ExitCode),
		zap.Int(logFieldProcessIdentifierConstant, result.ProcessIdentifier),
	)

	if exitFailure := newExitFailure(command, result); exitFailure != nil {
		executor.logger.Warn(executor.messageFormatter.BuildFailureMessage(command, result), resultFields...)
		return result, exitFailure
	}

	executor.logger.Info(executor.messageFormatter.BuildSuccessMessage(command), resultFields...)
	return result, nil
}

func (executor *ProcessExecutor) reportExecutionFailure(command ProcessCommand, failure CommandFailure) {
	executor.eventObserver.CommandExecutionFailed(command, failure)
	failureFields := append(executor.commandFields(command),
		zap.String(logFieldFailureKindConstant, string(failure.Kind)),
		zap.Error(failure.Cause),
	)
	executor.logger.Warn(executor.messageFormatter.BuildExecutionFailureMessage(command, failure.Cause), failureFields...)
}

func (executor *ProcessExecutor) commandFields(command ProcessCommand) []zap.Field {
	fields := []zap.Field{zap.String(logFieldCommandKindConstant, string(command.Kind))}
	switch command.Kind {
	case CommandKindShell:
		fields = append(fields, zap.String(logFieldCommandLineConstant, command.CommandLine))
	case CommandKindRedirect:
		fields = append(fields,
			zap.Strings(logFieldArgumentsConstant, command.Arguments),
			zap.String(logFieldOutputFileConstant, command.OutputFile),
		)
	default:
		fields = append(fields, zap.Strings(logFieldArgumentsConstant, command.Arguments))
	}
	return fields
}

func validateCommand(command ProcessCommand) error {
	switch command.Kind {
	case CommandKindShell:
		if len(command.CommandLine) == 0 {
			return ErrCommandLineMissing
		}
		return nil
	case CommandKindRedirect:
		if len(command.OutputFile) == 0 {
			return ErrOutputFileMissing
		}
		return validateArguments(command.Arguments)
	case CommandKindExec:
		return validateArguments(command.Arguments)
	default:
		return fmt.Errorf(unsupportedCommandKindTemplateConstant, command.Kind)
	}
}

func validateArguments(arguments []string) error {
	if len(arguments) == 0 || len(arguments[0]) == 0 {
		return ErrArgumentsMissing
	}
	return nil
}

func ensureCommandFailure(command ProcessCommand, runError error) CommandFailure {
	var failure CommandFailure
	if errors.As(runError, &failure) {
		return failure
	}
	return CommandFailure{Kind: FailureKindSpawn, Command: command, Cause: runError}
}
