package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandMessageFormatterDescribesCommands(t *testing.T) {
	formatter := CommandMessageFormatter{}

	shellCommand := ProcessCommand{Kind: CommandKindShell, CommandLine: "ls -la"}
	execCommand := ProcessCommand{Kind: CommandKindExec, Arguments: []string{"/bin/echo", "hello"}}
	redirectCommand := ProcessCommand{Kind: CommandKindRedirect, Arguments: []string{"/bin/echo", "hello"}, OutputFile: "/tmp/out.txt"}

	require.Equal(t, `Running shell "ls -la"`, formatter.BuildStartedMessage(shellCommand))
	require.Equal(t, "Completed /bin/echo hello", formatter.BuildSuccessMessage(execCommand))
	require.Equal(t, "/bin/echo hello > /tmp/out.txt failed with exit code 2", formatter.BuildFailureMessage(redirectCommand, ClassifyExit(true, 2)))
	require.Equal(t, "/bin/echo hello terminated abnormally", formatter.BuildFailureMessage(execCommand, ClassifyExit(false, -1)))
	require.Equal(t, "/bin/echo hello failed: boom", formatter.BuildExecutionFailureMessage(execCommand, errors.New("boom")))
	require.Equal(t, "<empty command> failed: unknown error", formatter.BuildExecutionFailureMessage(ProcessCommand{Kind: CommandKindExec}, nil))
}

func TestCommandFailureError(t *testing.T) {
	command := ProcessCommand{Kind: CommandKindExec, Arguments: []string{"/bin/false"}}

	require.Equal(t, "/bin/false: nonzero_exit (exit code 1)", CommandFailure{Kind: FailureKindNonZeroExit, Command: command, Result: ClassifyExit(true, 1)}.Error())
	require.Equal(t, "/bin/false: abnormal_termination", CommandFailure{Kind: FailureKindAbnormal, Command: command}.Error())

	cause := errors.New("no such file")
	wrapped := CommandFailure{Kind: FailureKindProgramReplacement, Command: command, Cause: cause}
	require.Equal(t, "/bin/false: program_replacement_failure: no such file", wrapped.Error())
	require.ErrorIs(t, wrapped, cause)

	kind, available := FailureKindOf(wrapped)
	require.True(t, available)
	require.Equal(t, FailureKindProgramReplacement, kind)

	_, available = FailureKindOf(cause)
	require.False(t, available)
}
