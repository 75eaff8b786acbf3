// Package report assembles the full text of a failed check: header, the
// highlighted statement, a where clause with operand values, extra
// diagnostics and the stack trace.
package report
