// Package output provides structured output handling for the ukato CLI.
//
// Every command writes through a Printer, which switches between
// human-readable and JSON output based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Success(map[string]any{"message": "Note created", "path": path})
//	printer.Warn("template %q not found, using %q", name, "basic")
//	printer.Error(err)
//
// # JSON Mode
//
// With --json, results and errors are single JSON objects:
//
//	// Success: {"status": "ok", "path": "...", ...}
//	// Error:   {"error": "message", "code": N}
//
// Human output uses lipgloss styles that are cleared when the output is not
// a terminal or when --color never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: not initialized, invalid name, nothing to open
//	output.ExitSystemError // 2: I/O failure, editor could not be started
//	output.ExitEditorError // 3: editor exited with a non-zero status
//
// Errors built with NewUserError, NewSystemError and NewEditorError carry
// their code through to os.Exit via GetExitCode.
package output
