// Package filesystem is the CLI's single door to the host filesystem. Every
// operation forwards one-to-one to an afero.Fs, so production code runs on
// the OS filesystem while tests swap in an in-memory one. Errors from the
// backend are returned as-is.
package filesystem
