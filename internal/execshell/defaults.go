package execshell

import "go.uber.org/zap"

func newDefaultExecutor() *ProcessExecutor {
	return &ProcessExecutor{
		logger:           zap.NewNop(),
		runner:           NewOSProcessRunner(),
		eventObserver:    noopCommandEventObserver{},
		messageFormatter: CommandMessageFormatter{},
	}
}

// ShellExecute runs commandLine through /bin/sh and reports whether it exited with status zero.
func ShellExecute(commandLine string) bool {
	return newDefaultExecutor().ShellExecute(commandLine)
}

// Execute spawns arguments[0] without a PATH search and reports whether it exited with status zero.
func Execute(arguments []string) bool {
	return newDefaultExecutor().Execute(arguments)
}

// ExecuteWithRedirect behaves like Execute with standard output written to outputFile.
func ExecuteWithRedirect(outputFile string, arguments []string) bool {
	return newDefaultExecutor().ExecuteWithRedirect(outputFile, arguments)
}
