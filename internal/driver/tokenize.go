package driver

import (
	"assertfmt/internal/diag"
	"assertfmt/internal/lexer"
	"assertfmt/internal/resolve"
	"assertfmt/internal/syntax"
	"assertfmt/internal/token"
	"assertfmt/internal/trace"
)

type TokenizeResult struct {
	Source string
	Tokens []token.Token
	Bag    *diag.Bag
}

// Tokenize scans expr and collects lexer diagnostics. A malformed literal
// is returned as an error together with the diagnostics seen so far.
func Tokenize(expr string, decomposeShr bool, maxDiagnostics int) (*TokenizeResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	tokens, err := lexer.Tokenize(expr, lexer.Options{
		DecomposeShr: decomposeShr,
		Reporter:     diag.BagReporter{Bag: bag},
	})
	bag.Sort()
	return &TokenizeResult{Source: expr, Tokens: tokens, Bag: bag}, err
}

type DecomposeResult struct {
	Split resolve.Split
	Bag   *diag.Bag
}

// Decompose splits expr around the top-level op.
func Decompose(expr, op string, maxDepth int, tracer trace.Tracer, maxDiagnostics int) (*DecomposeResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	r := resolve.New(syntax.NewModel(), resolve.Options{
		MaxDepth: maxDepth,
		Reporter: diag.BagReporter{Bag: bag},
		Tracer:   tracer,
	})
	split, err := r.Decompose(expr, op)
	bag.Sort()
	return &DecomposeResult{Split: split, Bag: bag}, err
}
