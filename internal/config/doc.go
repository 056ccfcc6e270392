// Package config manages user-level settings stored at ~/.au/config.yaml.
// Values can be overridden through AU_* environment variables, which is how
// the log level, the default build environment and non-interactive mode are
// usually set in CI.
package config
