// Package commands provides the command-line interface for the paxconv tool.
//
// It implements commands for:
//   - single card number conversion
//   - whole-CSV conversion
//   - self-verification against reference cards
//
// The package handles command-line parsing, configuration validation,
// and flag binding through cobra and viper.
package commands
