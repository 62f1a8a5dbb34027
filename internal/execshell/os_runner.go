package execshell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
)

const (
	defaultShellPathConstant            = "/bin/sh"
	shellCommandFlagConstant            = "-c"
	outputFileOpenFlagsConstant         = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	outputFilePermissionsConstant       = fs.FileMode(0o700)
	outputFileOpenErrorTemplateConstant = "open %s: %w"
	processStateMissingMessageConstant  = "process state unavailable after wait"
	startFailureTemplateConstant        = "start %s: %w"
)

var errProcessStateMissing = errors.New(processStateMissingMessageConstant)

// OSProcessRunner executes commands using the operating system facilities.
type OSProcessRunner struct {
	shellPath string
}

// NewOSProcessRunner constructs a runner backed by os/exec that interprets shell commands with /bin/sh.
func NewOSProcessRunner() *OSProcessRunner {
	return NewOSProcessRunnerWithShell(defaultShellPathConstant)
}

// NewOSProcessRunnerWithShell constructs a runner that interprets shell commands with the provided interpreter.
func NewOSProcessRunnerWithShell(shellPath string) *OSProcessRunner {
	if len(shellPath) == 0 {
		shellPath = defaultShellPathConstant
	}
	return &OSProcessRunner{shellPath: shellPath}
}

// ShellPath returns the interpreter used for shell commands.
func (runner *OSProcessRunner) ShellPath() string {
	return runner.shellPath
}

// Run spawns the command, waits for it, and reports how it terminated.
// Infrastructure failures are returned as CommandFailure errors; a completed
// process is always reported through ExecutionResult with a nil error.
func (runner *OSProcessRunner) Run(command ProcessCommand) (ExecutionResult, error) {
	argumentVector := runner.argumentVector(command)
	if len(argumentVector) == 0 || len(argumentVector[0]) == 0 {
		return ExecutionResult{}, newInvalidArgumentFailure(command, ErrArgumentsMissing)
	}

	executable := &exec.Cmd{
		Path:   argumentVector[0],
		Args:   argumentVector,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	var outputFile *os.File
	if command.Kind == CommandKindRedirect {
		var openError error
		outputFile, openError = os.OpenFile(command.OutputFile, outputFileOpenFlagsConstant, outputFilePermissionsConstant)
		if openError != nil {
			return ExecutionResult{}, CommandFailure{
				Kind:    FailureKindFileSetup,
				Command: command,
				Cause:   fmt.Errorf(outputFileOpenErrorTemplateConstant, command.OutputFile, openError),
			}
		}
		executable.Stdout = outputFile
	}

	startError := executable.Start()
	if outputFile != nil {
		// The child holds its own descriptor for standard output once started.
		outputFile.Close()
	}
	if startError != nil {
		return ExecutionResult{}, CommandFailure{
			Kind:    classifyStartFailure(startError),
			Command: command,
			Cause:   fmt.Errorf(startFailureTemplateConstant, argumentVector[0], startError),
		}
	}

	processIdentifier := executable.Process.Pid

	waitError := executable.Wait()
	if waitError != nil {
		exitError := &exec.ExitError{}
		if !errors.As(waitError, &exitError) {
			return ExecutionResult{ProcessIdentifier: processIdentifier}, CommandFailure{
				Kind:    FailureKindWait,
				Command: command,
				Cause:   waitError,
			}
		}
	}

	processState := executable.ProcessState
	if processState == nil {
		return ExecutionResult{ProcessIdentifier: processIdentifier}, CommandFailure{
			Kind:    FailureKindWait,
			Command: command,
			Cause:   errProcessStateMissing,
		}
	}

	result := ClassifyExit(processState.Exited(), processState.ExitCode())
	result.ProcessIdentifier = processIdentifier
	return result, nil
}

func (runner *OSProcessRunner) argumentVector(command ProcessCommand) []string {
	if command.Kind == CommandKindShell {
		return []string{runner.shellPath, shellCommandFlagConstant, command.CommandLine}
	}
	return append([]string{}, command.Arguments...)
}

// classifyStartFailure separates failures caused by the target executable from
// failures to create the child process at all.
func classifyStartFailure(startError error) FailureKind {
	switch {
	case errors.Is(startError, fs.ErrNotExist),
		errors.Is(startError, fs.ErrPermission),
		errors.Is(startError, syscall.ENOEXEC),
		errors.Is(startError, syscall.ENOTDIR):
		return FailureKindProgramReplacement
	default:
		return FailureKindSpawn
	}
}
