// Package cli constructs the systemcalls command-line interface, wiring the
// Cobra command hierarchy, the Viper-backed configuration loader, and zap
// logging around the process execution helpers.
package cli
