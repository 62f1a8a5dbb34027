// Package process builds the Cobra commands that run external processes.
package process

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/systemcalls/internal/execshell"
	"github.com/temirov/systemcalls/internal/ui"
	"github.com/temirov/systemcalls/internal/utils"
	"github.com/temirov/systemcalls/internal/utils/flags"
	pathutils "github.com/temirov/systemcalls/internal/utils/path"
)

const (
	shellCommandUseConstant                 = "shell <command line>"
	shellCommandShortDescriptionConstant    = "Run a command line through the platform shell"
	shellCommandLongDescriptionConstant     = "shell hands the command line to the configured interpreter (/bin/sh -c by default) and succeeds only when it exits with status zero. Remaining arguments are joined with spaces."
	execCommandUseConstant                  = "exec <absolute-path> [arguments...]"
	execCommandShortDescriptionConstant     = "Run an executable directly with an explicit argument vector"
	execCommandLongDescriptionConstant      = "exec spawns the executable without shell parsing or PATH search, passing the arguments unmodified, and succeeds only when it exits with status zero."
	redirectCommandUseConstant              = "exec-redirect --output <file> <absolute-path> [arguments...]"
	redirectCommandShortDescriptionConstant = "Run an executable with standard output written to a file"
	redirectCommandLongDescriptionConstant  = "exec-redirect behaves like exec, writing the child's standard output to the given file. The file is created when absent and truncated when present."
	shellArgumentsJoinSeparatorConstant     = " "
	commandFailedTemplateConstant           = "%s: %w"
	executorCreationErrorTemplateConstant   = "unable to construct process executor: %w"
	commandFailedMessageConstant            = "command did not exit successfully"
)

// ErrCommandFailed is returned when the invoked process did not exit normally with status zero.
var ErrCommandFailed = errors.New(commandFailedMessageConstant)

// LoggerProvider yields a zap logger at command execution time.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the shell, exec, and exec-redirect commands.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConsoleLoggerProvider        LoggerProvider
	HumanReadableLoggingProvider func() bool
	Runner                       execshell.ProcessRunner
	HomeExpander                 *pathutils.HomeExpander
}

// BuildShellCommand constructs the shell command.
func (builder *CommandBuilder) BuildShellCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   shellCommandUseConstant,
		Short: shellCommandShortDescriptionConstant,
		Long:  shellCommandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			commandLine := strings.Join(arguments, shellArgumentsJoinSeparatorConstant)
			return builder.run(command, commandLine, func(executor *execshell.ProcessExecutor) bool {
				return executor.ShellExecute(commandLine)
			})
		},
	}
	command.Flags().SetInterspersed(false)
	return command, nil
}

// BuildExecCommand constructs the exec command.
func (builder *CommandBuilder) BuildExecCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   execCommandUseConstant,
		Short: execCommandShortDescriptionConstant,
		Long:  execCommandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, strings.Join(arguments, shellArgumentsJoinSeparatorConstant), func(executor *execshell.ProcessExecutor) bool {
				return executor.Execute(arguments)
			})
		},
	}
	command.Flags().SetInterspersed(false)
	return command, nil
}

// BuildRedirectCommand constructs the exec-redirect command.
func (builder *CommandBuilder) BuildRedirectCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   redirectCommandUseConstant,
		Short: redirectCommandShortDescriptionConstant,
		Long:  redirectCommandLongDescriptionConstant,
	}
	outputFileFlag := flags.BindOutputFileFlag(command, builder.HomeExpander)
	command.RunE = func(command *cobra.Command, arguments []string) error {
		return builder.run(command, strings.Join(arguments, shellArgumentsJoinSeparatorConstant), func(executor *execshell.ProcessExecutor) bool {
			return executor.ExecuteWithRedirect(outputFileFlag.Path(), arguments)
		})
	}
	command.Flags().SetInterspersed(false)
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, label string, invoke func(executor *execshell.ProcessExecutor) bool) error {
	executor, executorError := builder.resolveExecutor(command)
	if executorError != nil {
		return fmt.Errorf(executorCreationErrorTemplateConstant, executorError)
	}

	if !invoke(executor) {
		if len(label) == 0 {
			label = command.Name()
		}
		return fmt.Errorf(commandFailedTemplateConstant, label, ErrCommandFailed)
	}
	return nil
}

func (builder *CommandBuilder) resolveExecutor(command *cobra.Command) (*execshell.ProcessExecutor, error) {
	settings := builder.resolveSettings(command)

	runner := builder.Runner
	if runner == nil {
		runner = execshell.NewOSProcessRunnerWithShell(settings.ShellPath)
	}

	var options []execshell.ProcessExecutorOption
	if settings.ConsoleEvents && builder.humanReadableLogging() {
		options = append(options, execshell.WithCommandEventObserver(ui.NewConsoleCommandEventLogger(resolveLogger(builder.ConsoleLoggerProvider))))
	}

	return execshell.NewProcessExecutor(resolveLogger(builder.LoggerProvider), runner, options...)
}

func (builder *CommandBuilder) resolveSettings(command *cobra.Command) utils.ExecutionSettings {
	defaults := DefaultCommandConfiguration()
	fallbackSettings := utils.ExecutionSettings{ShellPath: defaults.ShellPath, ConsoleEvents: defaults.ConsoleEvents}
	if command == nil {
		return fallbackSettings
	}

	settings, settingsAvailable := utils.NewCommandContextAccessor().ExecutionSettings(command.Context())
	if !settingsAvailable {
		return fallbackSettings
	}
	if len(strings.TrimSpace(settings.ShellPath)) == 0 {
		settings.ShellPath = defaults.ShellPath
	}
	return settings
}

func (builder *CommandBuilder) humanReadableLogging() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	if logger := provider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}
