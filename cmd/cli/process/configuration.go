package process

import "strings"

const (
	defaultShellPathConstant              = "/bin/sh"
	shellPathConfigurationKeyConstant     = "shell_path"
	consoleEventsConfigurationKeyConstant = "console_events"
	configurationKeySeparatorConstant     = "."
)

// CommandConfiguration captures configuration values for the process commands.
type CommandConfiguration struct {
	ShellPath     string `mapstructure:"shell_path"`
	ConsoleEvents bool   `mapstructure:"console_events"`
}

// DefaultCommandConfiguration provides the default process command settings.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		ShellPath:     defaultShellPathConstant,
		ConsoleEvents: true,
	}
}

// DefaultConfigurationValues returns the defaults keyed for Viper under the provided prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationPrefix + configurationKeySeparatorConstant + shellPathConfigurationKeyConstant:     defaults.ShellPath,
		configurationPrefix + configurationKeySeparatorConstant + consoleEventsConfigurationKeyConstant: defaults.ConsoleEvents,
	}
}

// Sanitize trims configured values and restores defaults for empty ones.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.ShellPath = strings.TrimSpace(configuration.ShellPath)
	if len(sanitized.ShellPath) == 0 {
		sanitized.ShellPath = defaultShellPathConstant
	}
	return sanitized
}
