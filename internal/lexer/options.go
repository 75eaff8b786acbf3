package lexer

import (
	"assertfmt/internal/diag"
	"assertfmt/internal/source"
)

type Options struct {
	// DecomposeShr splits every ">>" into two ">" tokens.
	DecomposeShr bool
	Reporter     diag.Reporter // может быть nil, тогда диагностики не пишем
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
