package paths

import (
	"fmt"
	"strings"

	"assertfmt/internal/source"
)

// Handler rewrites the file paths of one report. Add every path first, then
// Finalize, then Resolve.
type Handler interface {
	Add(path string) error
	Finalize() error
	Resolve(path string) (string, error)
}

// Mode selects a Handler.
type Mode string

const (
	ModeFull          Mode = "full"
	ModeDisambiguated Mode = "disambiguated"
	ModeBasename      Mode = "basename"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeFull, ModeDisambiguated, ModeBasename:
		return m, nil
	case "":
		return ModeDisambiguated, nil
	default:
		return "", fmt.Errorf("invalid path mode: %q (expected: full|disambiguated|basename)", s)
	}
}

// HandlerByMode returns a fresh handler; handlers are per report.
func HandlerByMode(mode Mode, opts Options) (Handler, error) {
	switch mode {
	case ModeFull:
		return Identity{}, nil
	case ModeBasename:
		return Basename{Options: opts}, nil
	case ModeDisambiguated, "":
		return NewDisambiguating(opts), nil
	default:
		return nil, fmt.Errorf("invalid path mode: %q", mode)
	}
}

// Identity prints paths unchanged.
type Identity struct{}

func (Identity) Add(string) error { return nil }
func (Identity) Finalize() error { return nil }
func (Identity) Resolve(path string) (string, error) { return path, nil }

// Basename prints only the file name.
type Basename struct{ Options Options }

func (Basename) Add(string) error { return nil }
func (Basename) Finalize() error { return nil }
func (b Basename) Resolve(path string) (string, error) {
	return Base(path, b.Options), nil
}

// Disambiguating prints the shortest suffix that tells paths with the same
// file name apart.
type Disambiguating struct {
	opts      Options
	names     *source.Interner
	raw       []string
	resolved  map[string]string
	finalized bool
}

func NewDisambiguating(opts Options) *Disambiguating {
	return &Disambiguating{opts: opts, names: source.NewInterner()}
}

func (d *Disambiguating) Add(path string) error {
	if d.finalized {
		return ErrFinalized
	}
	d.raw = append(d.raw, path)
	return nil
}

func (d *Disambiguating) Finalize() error {
	if d.finalized {
		return nil
	}
	parsed := make(map[string][]string, len(d.raw))
	tries := make(map[string]*Trie)
	var order []string
	for _, path := range d.raw {
		if _, seen := parsed[path]; seen {
			continue
		}
		components := ParsePath(path, d.opts)
		parsed[path] = components
		order = append(order, path)
		if len(components) == 0 {
			continue
		}
		name := components[len(components)-1]
		trie, ok := tries[name]
		if !ok {
			trie = newTrie(name, d.names)
			tries[name] = trie
		}
		if err := trie.Insert(components); err != nil {
			return fmt.Errorf("insert %q: %w", path, err)
		}
	}
	for _, trie := range tries {
		trie.Finalize()
	}

	d.resolved = make(map[string]string, len(order))
	for _, path := range order {
		components := parsed[path]
		if len(components) == 0 {
			d.resolved[path] = path
			continue
		}
		short, err := tries[components[len(components)-1]].Disambiguate(components)
		if err != nil {
			return fmt.Errorf("disambiguate %q: %w", path, err)
		}
		d.resolved[path] = strings.Join(short, "/")
	}
	d.finalized = true
	return nil
}

func (d *Disambiguating) Resolve(path string) (string, error) {
	if !d.finalized {
		return "", ErrNotFinalized
	}
	short, ok := d.resolved[path]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return short, nil
}
