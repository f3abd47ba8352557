// Package logger provides logging facilities for the gitcz application.
//
// The Logger interface separates internal debug logging (Info, Warning,
// Error) from user-facing output (InfoToUser, WarningToUser, Success,
// StatusMessage). Debug logs go to an XDG-located log file through
// log/slog when --debug is enabled; user-facing lines are written to
// stdout/stderr with lipgloss-styled prefixes, degradable to plain text
// when color is disabled.
package logger
