package resolve

import "errors"

var (
	// ErrNoCandidate: no parse tree puts the target operator at top level.
	ErrNoCandidate = errors.New("operator is not a top-level split")
	// ErrAmbiguous: parse trees disagree on the split.
	ErrAmbiguous = errors.New("split is ambiguous")
	// ErrDepthExceeded: too many nested template forks; the walk was abandoned.
	ErrDepthExceeded = errors.New("template fork depth exceeded")
	// ErrIllFormed: unbalanced brackets, stray punctuation or a malformed literal.
	ErrIllFormed = errors.New("ill-formed expression")
)
