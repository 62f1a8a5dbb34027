// Package execshell provides synchronous helpers for invoking external processes.
//
// ProcessExecutor validates requests, logs each invocation through zap, and
// collapses the observed exit status into a success flag. OSProcessRunner
// performs the actual spawn and wait on top of os/exec, either through the
// platform shell, directly from an absolute executable path, or with standard
// output redirected to a file.
package execshell
