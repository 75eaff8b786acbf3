// Package fuzztests houses Go fuzz harnesses that push arbitrary input
// through the lexer, the highlighter and the operand resolver. Its goal is
// to guard against panics and lost bytes.
//
// Назначение: прогонять байты через lexer.Tokenize, highlight.Blocks и
// resolve.Decompose.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/lexer, internal/highlight, internal/resolve,
// internal/syntax, internal/diag.
package fuzztests
