// Package utils exposes reusable helpers consumed by the systemcalls CLI.
//
// ConfigurationLoader layers embedded defaults, configuration files, and
// environment variables through Viper; LoggerFactory builds the zap loggers;
// CommandContextAccessor threads resolved settings through Cobra contexts.
package utils
