// Package diag defines the diagnostic vocabulary shared by every compiler
// pass: Severity, Diagnostic, the tri-state Result used by passes that can
// recover from bad input, and Bag for accumulating diagnostics across a
// run. Rendering diagnostics to a terminal lives in internal/diagfmt.
package diag
