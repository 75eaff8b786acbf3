// Package lexer splits a check expression into classified tokens.
//
// The scanner works directly on the expression string; every token's Text is
// a substring of it. Comments are dropped, so Join(Tokenize(s)) == s holds for
// comment-free input. Unknown bytes never fail the scan: they become Unknown
// tokens and the caller decides whether that matters (see Strict). The only
// error is a malformed character or string literal, reported as *Error
// wrapping ErrMalformedLiteral.
package lexer
