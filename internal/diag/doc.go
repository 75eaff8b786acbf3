// Package diag defines the diagnostic model shared by the lexer and the operand
// resolver.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string ID (LEX*, RES*), a short Message and the Primary
// span inside the analysed expression. Producers emit through a Reporter so
// they never depend on storage; BagReporter collects into a bounded Bag that
// can be sorted by span. A nil Reporter is always allowed and
// means "drop".
//
// Diagnostics complement Go errors: a phase that fails still returns a
// wrapped sentinel error, and additionally reports what it saw so the CLI can
// print it.
package diag
