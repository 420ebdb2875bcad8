// Package commands defines the baseconv CLI.
//
// Commands
//
//   - to      Convert a number to another base
//   - bases   Convert a number to several bases at once
//   - from    Convert a number written in another base to base 10
//   - sum     Add numbers written in different bases
//
// # Implementation
//
// The root command turns the persistent flags (--scale, --digits) into
// conversion options and sets up a [log/slog] logger on stderr before any
// subcommand runs. Debug records are only written with --verbose.
package commands
