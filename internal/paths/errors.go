package paths

import "errors"

var (
	ErrFinalized    = errors.New("trie is finalized")
	ErrNotFinalized = errors.New("trie is not finalized")
	ErrForeignPath  = errors.New("path belongs to another file name")
	ErrUnknownPath  = errors.New("path was never inserted")
	ErrEmptyPath    = errors.New("path has no components")
)
