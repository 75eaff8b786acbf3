// Package paths shortens source file paths for stack traces.
//
// Paths sharing a file name go into one reverse trie keyed from the file
// name towards the root:
//
//	a/b/c/d/e        2   2   1   1   1
//	a/b/f/d/e        e - d - c - b - a
//	                      \   1   1   1
//	                       \ f - b - a
//
// Each node counts the distinct paths below it. Walking from the file name
// while the count is above one yields c/d/e and f/d/e.
package paths
