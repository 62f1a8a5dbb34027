package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/systemcalls/internal/execshell"
	"github.com/temirov/systemcalls/internal/ui"
)

const (
	testExecutablePathConstant             = "/usr/bin/env"
	testCommandArgumentConstant            = "--version"
	testOutputFileConstant                 = "/tmp/env-version.txt"
	testCommandLabelExpectationConstant    = "/usr/bin/env --version > /tmp/env-version.txt"
	testExecutionFailureReasonConstant     = "execution failed"
	testStartMessageExpectationConstant    = "Running " + testCommandLabelExpectationConstant
	testSuccessMessageExpectationConstant  = "Completed " + testCommandLabelExpectationConstant
	testFailureMessageExpectationConstant  = testCommandLabelExpectationConstant + " failed with exit code 1"
	testAbnormalMessageExpectationConstant = testCommandLabelExpectationConstant + " terminated abnormally"
	testExecutionFailureMessageExpectation = testCommandLabelExpectationConstant + " failed: " + testExecutionFailureReasonConstant
)

func TestConsoleCommandEventLoggerEmitsMessages(testInstance *testing.T) {
	command := execshell.ProcessCommand{
		Kind:       execshell.CommandKindRedirect,
		Arguments:  []string{testExecutablePathConstant, testCommandArgumentConstant},
		OutputFile: testOutputFileConstant,
	}

	testCases := []struct {
		name            string
		invoke          func(logger *ui.ConsoleCommandEventLogger)
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		{
			name: "command_started",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandStarted(command)
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: testStartMessageExpectationConstant,
		},
		{
			name: "command_completed_success",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandCompleted(command, execshell.ClassifyExit(true, 0))
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: testSuccessMessageExpectationConstant,
		},
		{
			name: "command_completed_failure",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandCompleted(command, execshell.ClassifyExit(true, 1))
			},
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: testFailureMessageExpectationConstant,
		},
		{
			name: "command_completed_abnormal",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandCompleted(command, execshell.ClassifyExit(false, -1))
			},
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: testAbnormalMessageExpectationConstant,
		},
		{
			name: "command_execution_failure",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandExecutionFailed(command, errors.New(testExecutionFailureReasonConstant))
			},
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: testExecutionFailureMessageExpectation,
		},
		{
			name: "command_failure_reports_cause",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandExecutionFailed(command, execshell.CommandFailure{
					Kind:    execshell.FailureKindFileSetup,
					Command: command,
					Cause:   errors.New(testExecutionFailureReasonConstant),
				})
			},
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: testExecutionFailureMessageExpectation,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zapcore.DebugLevel)
			consoleLogger := zap.New(observerCore)
			eventLogger := ui.NewConsoleCommandEventLogger(consoleLogger)

			testCase.invoke(eventLogger)

			entries := observedLogs.All()
			require.Len(testInstance, entries, 1)
			require.Equal(testInstance, testCase.expectedLevel, entries[0].Level)
			require.Equal(testInstance, testCase.expectedMessage, entries[0].Message)
		})
	}
}
