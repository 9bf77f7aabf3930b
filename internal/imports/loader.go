package imports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nacre-lang/nacre/internal/files"
	"github.com/nacre-lang/nacre/internal/term"
)

// ParseFunc turns raw source into a term. The parser lives outside
// this package; the loader only orchestrates locating and caching.
type ParseFunc func(src []byte, path string) (term.RichTerm, error)

type entry struct {
	path   string
	term   term.RichTerm
	stored bool
}

// Loader is the file-system Resolver. Files are cached by absolute
// path: the first Resolve of a path reads and parses it and mints a
// files.ID, every later Resolve of the same file answers from cache.
// That cache is what deduplicates diamond import graphs; the
// transformation driver never tracks file identity itself.
type Loader struct {
	parse   ParseFunc
	cfg     Config
	ids     map[string]files.ID
	entries map[files.ID]*entry
}

func NewLoader(parse ParseFunc, cfg Config) *Loader {
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	return &Loader{
		parse:   parse,
		cfg:     cfg,
		ids:     make(map[string]files.ID),
		entries: make(map[files.ID]*entry),
	}
}

// Resolve implements Resolver. Relative paths are tried against the
// importing file's directory first, then against each configured
// search path, then against the working directory.
func (l *Loader) Resolve(path string, pos term.Pos) (ResolvedTerm, files.ID, error) {
	if filepath.Ext(path) == "" {
		path += l.cfg.Extension
	}

	var lastErr error
	for _, candidate := range l.candidates(path, pos) {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			lastErr = err
			continue
		}

		if id, ok := l.ids[abs]; ok {
			return FromCache(), id, nil
		}

		data, err := os.ReadFile(abs)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return ResolvedTerm{}, files.ID{}, &ImportError{Path: path, Pos: pos, Err: err}
		}

		rt, err := l.parse(data, abs)
		if err != nil {
			return ResolvedTerm{}, files.ID{}, &ImportError{Path: path, Pos: pos, Err: fmt.Errorf("parsing %s: %w", abs, err)}
		}

		id := files.NewID()
		l.ids[abs] = id
		l.entries[id] = &entry{path: abs}
		return FromFile(rt), id, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no such file in any import location")
	}
	return ResolvedTerm{}, files.ID{}, &ImportError{Path: path, Pos: pos, Err: lastErr}
}

// Insert implements Resolver: it stores the transformed term for id,
// overwriting any previous content.
func (l *Loader) Insert(id files.ID, rt term.RichTerm) {
	e, ok := l.entries[id]
	if !ok {
		e = &entry{}
		l.entries[id] = e
	}
	e.term = rt
	e.stored = true
}

// Get returns the transformed term stored for id, if any. Freshly
// resolved files have no stored term until the driver inserts one.
func (l *Loader) Get(id files.ID) (term.RichTerm, bool) {
	e, ok := l.entries[id]
	if !ok || !e.stored {
		return term.RichTerm{}, false
	}
	return e.term, true
}

// Path returns the absolute path id was minted for, for diagnostics.
func (l *Loader) Path(id files.ID) (string, bool) {
	e, ok := l.entries[id]
	if !ok {
		return "", false
	}
	return e.path, true
}

func (l *Loader) candidates(path string, pos term.Pos) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}

	var out []string
	if pos.File != "" {
		out = append(out, filepath.Join(filepath.Dir(pos.File), path))
	}
	for _, dir := range l.cfg.SearchPaths {
		out = append(out, filepath.Join(dir, path))
	}
	out = append(out, path)
	return out
}
