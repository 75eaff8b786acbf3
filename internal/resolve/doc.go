// Package resolve splits a check expression into its two top-level operands.
//
// Without type information "a < b > c" may contain a template argument list
// or two comparisons. The resolver walks every plausible parse tree (one fork
// per "<" that follows an identifier), collects the token index where the
// target operator sits at the loosest precedence, and succeeds only when all
// surviving trees agree on a single split.
package resolve
