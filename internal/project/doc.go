// Package project discovers and loads the project a command runs against.
//
// A project root is any directory containing the aurelia_project marker
// directory. Inside it, aurelia.json holds the project model (validated
// against an embedded JSON schema), tasks/ holds runnable task scripts and
// generators/ holds generator scripts. Scripts may carry a sidecar
// <name>.json or <name>.yaml describing them for the help command.
package project
