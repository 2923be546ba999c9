// Package cli implements the command-line interface for tojiru.
//
// The cli package provides:
// - Command-line argument parsing and validation
// - Tab listing output in table, plain and JSON form
// - Close commands with shift-safe ordering
// - Permission diagnostics for the macOS automation grant
package cli
