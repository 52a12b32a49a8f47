// Package application provides the CLI surface of the configuration value
// resolver: argument parsing, orchestration of loading and resolution, and
// exit-code handling. It keeps the main package focused on process setup.
package application
