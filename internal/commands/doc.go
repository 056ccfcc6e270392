// Package commands defines the units of behavior the CLI dispatches to.
//
// Each command is built by a Factory from a Deps value that carries every
// collaborator it may need (UI, options, filesystem, project, logger). The
// runner in internal/cli looks commands up by name in a Registry; names that
// match no built-in fall back to the project's tasks through RunCommand.
package commands
