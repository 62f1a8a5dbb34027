package process_test

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/systemcalls/cmd/cli/process"
	"github.com/temirov/systemcalls/internal/execshell"
	"github.com/temirov/systemcalls/internal/utils"
	pathutils "github.com/temirov/systemcalls/internal/utils/path"
)

const (
	testHomeDirectoryConstant        = "/home/tester"
	testExecutablePathConstant       = "/bin/ls"
	testExecutableFlagConstant       = "-la"
	testRedirectFileConstant         = "~/listing.txt"
	testExpandedRedirectFileConstant = "/home/tester/listing.txt"
	testConfiguredShellConstant      = "/bin/bash"
)

type recordingProcessRunner struct {
	executionResult  execshell.ExecutionResult
	recordedCommands []execshell.ProcessCommand
}

func (runner *recordingProcessRunner) Run(command execshell.ProcessCommand) (execshell.ExecutionResult, error) {
	runner.recordedCommands = append(runner.recordedCommands, command)
	return runner.executionResult, nil
}

func executeCommand(testInstance *testing.T, command *cobra.Command, arguments []string) error {
	testInstance.Helper()
	command.SetArgs(arguments)
	command.SetOut(io.Discard)
	command.SetErr(io.Discard)
	command.SilenceUsage = true
	command.SilenceErrors = true
	return command.ExecuteContext(context.Background())
}

func TestProcessCommandsForwardArguments(testInstance *testing.T) {
	testCases := []struct {
		name            string
		build           func(builder *process.CommandBuilder) (*cobra.Command, error)
		arguments       []string
		expectedCommand execshell.ProcessCommand
	}{
		{
			name:      "shell_joins_arguments",
			build:     func(builder *process.CommandBuilder) (*cobra.Command, error) { return builder.BuildShellCommand() },
			arguments: []string{"echo", "-n", "hello world"},
			expectedCommand: execshell.ProcessCommand{
				Kind:        execshell.CommandKindShell,
				CommandLine: "echo -n hello world",
			},
		},
		{
			name:      "exec_passes_flags_through",
			build:     func(builder *process.CommandBuilder) (*cobra.Command, error) { return builder.BuildExecCommand() },
			arguments: []string{testExecutablePathConstant, testExecutableFlagConstant},
			expectedCommand: execshell.ProcessCommand{
				Kind:      execshell.CommandKindExec,
				Arguments: []string{testExecutablePathConstant, testExecutableFlagConstant},
			},
		},
		{
			name:      "exec_redirect_expands_output_path",
			build:     func(builder *process.CommandBuilder) (*cobra.Command, error) { return builder.BuildRedirectCommand() },
			arguments: []string{"--output", testRedirectFileConstant, testExecutablePathConstant, testExecutableFlagConstant},
			expectedCommand: execshell.ProcessCommand{
				Kind:       execshell.CommandKindRedirect,
				Arguments:  []string{testExecutablePathConstant, testExecutableFlagConstant},
				OutputFile: testExpandedRedirectFileConstant,
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			recordingRunner := &recordingProcessRunner{executionResult: execshell.ClassifyExit(true, 0)}
			builder := &process.CommandBuilder{
				Runner: recordingRunner,
				HomeExpander: pathutils.NewHomeExpanderWithProvider(func() (string, error) {
					return testHomeDirectoryConstant, nil
				}),
			}

			command, buildError := testCase.build(builder)
			require.NoError(testInstance, buildError)

			require.NoError(testInstance, executeCommand(testInstance, command, testCase.arguments))
			require.Equal(testInstance, []execshell.ProcessCommand{testCase.expectedCommand}, recordingRunner.recordedCommands)
		})
	}
}

func TestProcessCommandsReportFailures(testInstance *testing.T) {
	testCases := []struct {
		name          string
		build         func(builder *process.CommandBuilder) (*cobra.Command, error)
		arguments     []string
		runnerResult  execshell.ExecutionResult
		expectSpawned bool
	}{
		{
			name:          "nonzero_exit",
			build:         func(builder *process.CommandBuilder) (*cobra.Command, error) { return builder.BuildExecCommand() },
			arguments:     []string{testExecutablePathConstant},
			runnerResult:  execshell.ClassifyExit(true, 2),
			expectSpawned: true,
		},
		{
			name:      "exec_without_arguments",
			build:     func(builder *process.CommandBuilder) (*cobra.Command, error) { return builder.BuildExecCommand() },
			arguments: []string{},
		},
		{
			name:      "shell_without_command_line",
			build:     func(builder *process.CommandBuilder) (*cobra.Command, error) { return builder.BuildShellCommand() },
			arguments: []string{},
		},
		{
			name:      "redirect_without_output",
			build:     func(builder *process.CommandBuilder) (*cobra.Command, error) { return builder.BuildRedirectCommand() },
			arguments: []string{testExecutablePathConstant},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			recordingRunner := &recordingProcessRunner{executionResult: testCase.runnerResult}
			builder := &process.CommandBuilder{Runner: recordingRunner}

			command, buildError := testCase.build(builder)
			require.NoError(testInstance, buildError)

			executionError := executeCommand(testInstance, command, testCase.arguments)
			require.ErrorIs(testInstance, executionError, process.ErrCommandFailed)
			require.Equal(testInstance, testCase.expectSpawned, len(recordingRunner.recordedCommands) == 1)
		})
	}
}

func TestProcessCommandsAttachConsoleEvents(testInstance *testing.T) {
	testCases := []struct {
		name                 string
		humanReadableLogging bool
		consoleEvents        bool
		expectedConsoleCount int
	}{
		{name: "console_enabled", humanReadableLogging: true, consoleEvents: true, expectedConsoleCount: 2},
		{name: "console_disabled_by_configuration", humanReadableLogging: true, consoleEvents: false},
		{name: "structured_logging", humanReadableLogging: false, consoleEvents: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			consoleCore, consoleLogs := observer.New(zapcore.DebugLevel)
			diagnosticCore, diagnosticLogs := observer.New(zapcore.DebugLevel)
			builder := &process.CommandBuilder{
				Runner:                       &recordingProcessRunner{executionResult: execshell.ClassifyExit(true, 0)},
				LoggerProvider:               func() *zap.Logger { return zap.New(diagnosticCore) },
				ConsoleLoggerProvider:        func() *zap.Logger { return zap.New(consoleCore) },
				HumanReadableLoggingProvider: func() bool { return testCase.humanReadableLogging },
			}

			command, buildError := builder.BuildExecCommand()
			require.NoError(testInstance, buildError)

			settings := utils.ExecutionSettings{ShellPath: testConfiguredShellConstant, ConsoleEvents: testCase.consoleEvents}
			command.SetContext(utils.NewCommandContextAccessor().WithExecutionSettings(context.Background(), settings))
			command.SetArgs([]string{testExecutablePathConstant})
			command.SetOut(io.Discard)
			require.NoError(testInstance, command.Execute())

			require.Len(testInstance, consoleLogs.All(), testCase.expectedConsoleCount)
			require.Len(testInstance, diagnosticLogs.All(), 2)
		})
	}
}

func TestCommandConfigurationSanitize(testInstance *testing.T) {
	require.Equal(testInstance, process.DefaultCommandConfiguration(), process.CommandConfiguration{ShellPath: "  ", ConsoleEvents: true}.Sanitize())
	require.Equal(testInstance, testConfiguredShellConstant, process.CommandConfiguration{ShellPath: " " + testConfiguredShellConstant + " "}.Sanitize().ShellPath)

	defaults := process.DefaultConfigurationValues("execution")
	require.Equal(testInstance, "/bin/sh", defaults["execution.shell_path"])
	require.Equal(testInstance, true, defaults["execution.console_events"])
}
