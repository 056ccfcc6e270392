// Package cli is the front controller of the au CLI. The cobra root command
// hands every argument to a Runner, which establishes the project context,
// resolves the command by name and executes it. Command implementations live
// in internal/commands.
package cli
