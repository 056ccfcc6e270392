// Package runtime executes project scripts (tasks and generators). The
// interpreter is chosen from the script's file extension: shell scripts run
// under sh, JavaScript under node, and Go files through `go run`.
package runtime
