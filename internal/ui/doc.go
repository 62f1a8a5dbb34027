// Package ui renders process execution events as short console lines, leaving
// structured diagnostics to the zap logger configured for the command.
package ui
