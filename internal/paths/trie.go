package paths

import (
	"fmt"
	"slices"

	"assertfmt/internal/source"
)

type node struct {
	segment  source.StringID
	terminal bool // здесь закончился вставленный путь
	branches int  // distinct inserted paths ending at or below this node
	children map[source.StringID]*node
}

func newNode(segment source.StringID) *node {
	return &node{segment: segment}
}

// insert walks path[i], path[i-1], ... and marks where it ends. A path that
// is a suffix of another ends on an inner node and counts as its own branch.
func (n *node) insert(path []source.StringID, i int) {
	if i < 0 {
		if !n.terminal {
			n.terminal = true
			n.branches++
		}
		return
	}
	child, ok := n.children[path[i]]
	if !ok {
		if n.children == nil {
			n.children = make(map[source.StringID]*node)
		}
		child = newNode(path[i])
		n.children[path[i]] = child
	}
	n.branches -= child.branches
	child.insert(path, i-1)
	n.branches += child.branches
}

// Trie holds every inserted path ending in one file name. Inserts must all
// happen before Finalize, queries after it.
type Trie struct {
	names     *source.Interner
	root      *node
	fileName  string
	finalized bool
}

func NewTrie(fileName string) *Trie {
	return newTrie(fileName, source.NewInterner())
}

func newTrie(fileName string, names *source.Interner) *Trie {
	return &Trie{
		names:    names,
		root:     newNode(names.Intern(fileName)),
		fileName: fileName,
	}
}

func (t *Trie) FileName() string { return t.fileName }

func (t *Trie) check(components []string) error {
	if len(components) == 0 {
		return ErrEmptyPath
	}
	if last := components[len(components)-1]; last != t.fileName {
		return fmt.Errorf("%w: %q in trie for %q", ErrForeignPath, last, t.fileName)
	}
	return nil
}

// Insert adds a parsed path. Inserting the same path twice is a no-op.
func (t *Trie) Insert(components []string) error {
	if t.finalized {
		return ErrFinalized
	}
	if err := t.check(components); err != nil {
		return err
	}
	ids := make([]source.StringID, len(components))
	for i, c := range components {
		ids[i] = t.names.Intern(c)
	}
	t.root.insert(ids, len(ids)-2)
	return nil
}

// Finalize ends the insert phase.
func (t *Trie) Finalize() { t.finalized = true }

// Disambiguate returns the shortest suffix of components that no other
// inserted path shares.
func (t *Trie) Disambiguate(components []string) ([]string, error) {
	if !t.finalized {
		return nil, ErrNotFinalized
	}
	if err := t.check(components); err != nil {
		return nil, err
	}
	result := []string{t.fileName}
	current := t.root
	for i := len(components) - 2; i >= 0 && current.branches > 1; i-- {
		id, ok := t.names.Find(components[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPath, components[i])
		}
		next, ok := current.children[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPath, components[i])
		}
		current = next
		result = append(result, t.names.MustLookup(current.segment))
	}
	slices.Reverse(result)
	return result, nil
}

// Branches reports how many distinct paths were inserted.
func (t *Trie) Branches() int { return t.root.branches }
