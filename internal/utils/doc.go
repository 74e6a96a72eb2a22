// Package utils supplies the cross-command plumbing for the CLI: the
// viper-backed ConfigurationLoader, the zap LoggerFactory, and context
// accessors for execution metadata shared between the root command and its
// subcommands.
package utils
