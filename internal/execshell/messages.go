package execshell

import (
	"fmt"
	"strings"
)

const (
	startedTemplateConstant               = "Running %s"
	successTemplateConstant               = "Completed %s"
	nonzeroExitTemplateConstant           = "%s failed with exit code %d"
	abnormalTerminationTemplateConstant   = "%s terminated abnormally"
	executionFailureTemplateConstant      = "%s failed: %s"
	shellLabelTemplateConstant            = "%s %q"
	redirectLabelTemplateConstant         = "%s > %s"
	commandArgumentsJoinSeparatorConstant = " "
	unknownFailureMessageConstant         = "unknown error"
	emptyCommandLabelConstant             = "<empty command>"
)

// CommandMessageFormatter builds human-readable diagnostics for process invocations.
type CommandMessageFormatter struct{}

// BuildStartedMessage describes a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ProcessCommand) string {
	return fmt.Sprintf(startedTemplateConstant, describeCommand(command))
}

// BuildSuccessMessage describes a command that exited normally with status zero.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ProcessCommand) string {
	return fmt.Sprintf(successTemplateConstant, describeCommand(command))
}

// BuildFailureMessage describes a command that ran but did not exit with status zero.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ProcessCommand, result ExecutionResult) string {
	if result.Outcome == AbnormalTermination {
		return fmt.Sprintf(abnormalTerminationTemplateConstant, describeCommand(command))
	}
	return fmt.Sprintf(nonzeroExitTemplateConstant, describeCommand(command), result.ExitCode)
}

// BuildExecutionFailureMessage describes a failure that prevented an exit status from being observed.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ProcessCommand, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(executionFailureTemplateConstant, describeCommand(command), failureMessage)
}

func describeCommand(command ProcessCommand) string {
	switch command.Kind {
	case CommandKindShell:
		return fmt.Sprintf(shellLabelTemplateConstant, command.Kind, command.CommandLine)
	case CommandKindRedirect:
		return fmt.Sprintf(redirectLabelTemplateConstant, joinArguments(command.Arguments), command.OutputFile)
	default:
		return joinArguments(command.Arguments)
	}
}

func joinArguments(arguments []string) string {
	joined := strings.TrimSpace(strings.Join(arguments, commandArgumentsJoinSeparatorConstant))
	if len(joined) == 0 {
		return emptyCommandLabelConstant
	}
	return joined
}
