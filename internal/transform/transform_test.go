package transform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nacre-lang/nacre/internal/files"
	"github.com/nacre-lang/nacre/internal/imports"
	"github.com/nacre-lang/nacre/internal/term"
)

// fakeResolver serves terms from memory. Like the real loader, it
// mints one files.ID per path and answers from cache on every resolve
// after the first.
type fakeResolver struct {
	terms    map[string]term.RichTerm
	fail     map[string]error
	ids      map[string]files.ID
	inserted map[files.ID]term.RichTerm
	inserts  map[files.ID]int
}

func newFakeResolver(terms map[string]term.RichTerm) *fakeResolver {
	return &fakeResolver{
		terms:    terms,
		fail:     make(map[string]error),
		ids:      make(map[string]files.ID),
		inserted: make(map[files.ID]term.RichTerm),
		inserts:  make(map[files.ID]int),
	}
}

func (r *fakeResolver) Resolve(path string, pos term.Pos) (imports.ResolvedTerm, files.ID, error) {
	if err, ok := r.fail[path]; ok {
		return imports.ResolvedTerm{}, files.ID{}, &imports.ImportError{Path: path, Pos: pos, Err: err}
	}
	if id, ok := r.ids[path]; ok {
		return imports.FromCache(), id, nil
	}
	rt, ok := r.terms[path]
	if !ok {
		return imports.ResolvedTerm{}, files.ID{}, &imports.ImportError{Path: path, Pos: pos, Err: fmt.Errorf("unknown path")}
	}
	id := files.NewID()
	r.ids[path] = id
	return imports.FromFile(rt), id, nil
}

func (r *fakeResolver) Insert(id files.ID, rt term.RichTerm) {
	r.inserted[id] = rt
	r.inserts[id]++
}

func (r *fakeResolver) Get(id files.ID) (term.RichTerm, bool) {
	rt, ok := r.inserted[id]
	return rt, ok
}

func importOf(path string) term.RichTerm {
	return term.RichTerm{Term: &term.Import{Path: path}}
}

// collect walks rt and returns every node matching keep.
func collect(t *testing.T, rt term.RichTerm, keep func(term.Term) bool) []term.Term {
	t.Helper()
	var out []term.Term
	_, err := term.Traverse(rt, func(rt term.RichTerm, _ struct{}) (term.RichTerm, error) {
		if keep(rt.Term) {
			out = append(out, rt.Term)
		}
		return rt, nil
	}, struct{}{})
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	return out
}

func isRawImport(t term.Term) bool {
	_, ok := t.(*term.Import)
	return ok
}

func isResolvedImport(t term.Term) bool {
	_, ok := t.(*term.ResolvedImport)
	return ok
}

func TestTransformResolvesImport(t *testing.T) {
	resolver := newFakeResolver(map[string]term.RichTerm{
		"dep": num(42),
	})
	root := term.RichTerm{Term: &term.RecordLiteral{Fields: []term.RecordField{
		{Name: "a", Value: importOf("dep")},
	}}}

	got, err := Transform(root, resolver)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raws := collect(t, got, isRawImport); len(raws) != 0 {
		t.Errorf("result still carries %d raw import nodes", len(raws))
	}
	markers := collect(t, got, isResolvedImport)
	if len(markers) != 1 {
		t.Fatalf("result carries %d resolved-import markers, want 1", len(markers))
	}
	id := markers[0].(*term.ResolvedImport).File
	if id != resolver.ids["dep"] {
		t.Errorf("marker carries %s, resolver minted %s", id, resolver.ids["dep"])
	}

	stored, ok := resolver.Get(id)
	if !ok {
		t.Fatal("dep's transformed term was never inserted")
	}
	if n, ok := stored.Term.(*term.NumberLiteral); !ok || n.Value != 42 {
		t.Errorf("stored term = %#v, want 42", stored.Term)
	}
}

func TestTransformDiamond(t *testing.T) {
	// root imports a and b; both import c. c must be loaded,
	// transformed and inserted exactly once.
	resolver := newFakeResolver(map[string]term.RichTerm{
		"a": term.RichTerm{Term: &term.ListLiteral{Elements: []term.RichTerm{importOf("c")}}},
		"b": term.RichTerm{Term: &term.ListLiteral{Elements: []term.RichTerm{importOf("c")}}},
		"c": num(1),
	})
	root := term.RichTerm{Term: &term.ListLiteral{Elements: []term.RichTerm{
		importOf("a"),
		importOf("b"),
	}}}

	if _, err := Transform(root, resolver); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cID := resolver.ids["c"]
	if n := resolver.inserts[cID]; n != 1 {
		t.Errorf("c was inserted %d times, want 1", n)
	}

	for _, path := range []string{"a", "b"} {
		stored, ok := resolver.Get(resolver.ids[path])
		if !ok {
			t.Fatalf("%s was never inserted", path)
		}
		if raws := collect(t, stored, isRawImport); len(raws) != 0 {
			t.Errorf("%s still carries a raw import", path)
		}
		markers := collect(t, stored, isResolvedImport)
		if len(markers) != 1 {
			t.Fatalf("%s carries %d markers, want 1", path, len(markers))
		}
		if got := markers[0].(*term.ResolvedImport).File; got != cID {
			t.Errorf("%s references %s, want c's id %s", path, got, cID)
		}
	}
}

func TestTransformNestedImportError(t *testing.T) {
	resolver := newFakeResolver(map[string]term.RichTerm{
		"a": term.RichTerm{Term: &term.ListLiteral{Elements: []term.RichTerm{importOf("broken")}}},
	})
	resolver.fail["broken"] = errors.New("no such file")

	root := term.RichTerm{Term: &term.ListLiteral{Elements: []term.RichTerm{importOf("a")}}}

	_, err := Transform(root, resolver)
	var impErr *imports.ImportError
	if !errors.As(err, &impErr) {
		t.Fatalf("error = %v, want an ImportError", err)
	}
	if impErr.Path != "broken" {
		t.Errorf("failing path = %q, want \"broken\"", impErr.Path)
	}
}

func TestTransformRootErrorSkipsQueue(t *testing.T) {
	// The first import resolves and is queued; the second fails. The
	// root pass error must surface without the queued file ever being
	// transformed or inserted.
	resolver := newFakeResolver(map[string]term.RichTerm{
		"a": num(1),
	})
	resolver.fail["broken"] = errors.New("no such file")

	root := term.RichTerm{Term: &term.ListLiteral{Elements: []term.RichTerm{
		importOf("a"),
		importOf("broken"),
	}}}

	_, err := Transform(root, resolver)
	var impErr *imports.ImportError
	if !errors.As(err, &impErr) {
		t.Fatalf("error = %v, want an ImportError", err)
	}
	if len(resolver.inserted) != 0 {
		t.Errorf("%d inserts happened after a root-pass failure, want 0", len(resolver.inserted))
	}
}

func TestTransformSharesResolvedImports(t *testing.T) {
	// After resolution the marker is a shareable term, so the record
	// field ends up as a variable bound to the marker.
	resolver := newFakeResolver(map[string]term.RichTerm{
		"dep": num(7),
	})
	root := term.RichTerm{Term: &term.RecordLiteral{Fields: []term.RecordField{
		{Name: "a", Value: importOf("dep")},
	}}}

	got, err := Transform(root, resolver)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	let, ok := got.Term.(*term.LetExpression)
	if !ok {
		t.Fatalf("top node = %T, want let", got.Term)
	}
	if !isResolvedImport(let.Bound.Term) {
		t.Errorf("let binds %T, want the resolved-import marker", let.Bound.Term)
	}
	record, ok := let.Body.Term.(*term.RecordLiteral)
	if !ok {
		t.Fatalf("let body = %T, want record", let.Body.Term)
	}
	if _, ok := record.Fields[0].Value.Term.(*term.Identifier); !ok {
		t.Errorf("field value = %T, want variable reference", record.Fields[0].Value.Term)
	}
}

// testParse is a minimal line-oriented parser for loader-backed tests:
// each line is either "import <path>" or a number, and a file with
// several lines parses to a list.
func testParse(src []byte, path string) (term.RichTerm, error) {
	var elements []term.RichTerm
	for i, line := range strings.Split(strings.TrimSpace(string(src)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pos := term.Pos{File: path, Line: i + 1, Col: 1}
		if target, ok := strings.CutPrefix(line, "import "); ok {
			elements = append(elements, term.RichTerm{Term: &term.Import{Path: target}, Pos: pos})
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return term.RichTerm{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		elements = append(elements, term.RichTerm{Term: &term.NumberLiteral{Value: v}, Pos: pos})
	}
	if len(elements) == 1 {
		return elements[0], nil
	}
	return term.RichTerm{Term: &term.ListLiteral{Elements: elements}}, nil
}

func TestTransformWithLoader(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.ncr", "import c.ncr\n")
	write("b.ncr", "import c.ncr\n")
	write("c.ncr", "42\n")

	loader := imports.NewLoader(testParse, imports.DefaultConfig())
	rootPos := term.Pos{File: filepath.Join(dir, "root.ncr"), Line: 1, Col: 1}
	root := term.RichTerm{Term: &term.ListLiteral{Elements: []term.RichTerm{
		{Term: &term.Import{Path: "a.ncr"}, Pos: rootPos},
		{Term: &term.Import{Path: "b.ncr"}, Pos: rootPos},
	}}}

	got, err := Transform(root, loader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	markers := collect(t, got, isResolvedImport)
	if len(markers) != 2 {
		t.Fatalf("root carries %d markers, want 2", len(markers))
	}

	var cIDs []files.ID
	for _, marker := range markers {
		id := marker.(*term.ResolvedImport).File
		stored, ok := loader.Get(id)
		if !ok {
			t.Fatalf("no transformed term cached for %s", id)
		}
		nested := collect(t, stored, isResolvedImport)
		if len(nested) != 1 {
			t.Fatalf("imported file carries %d markers, want 1", len(nested))
		}
		cIDs = append(cIDs, nested[0].(*term.ResolvedImport).File)
	}

	if cIDs[0] != cIDs[1] {
		t.Errorf("a and b reference different ids for c: %s vs %s", cIDs[0], cIDs[1])
	}
	stored, ok := loader.Get(cIDs[0])
	if !ok {
		t.Fatal("no transformed term cached for c")
	}
	if n, ok := stored.Term.(*term.NumberLiteral); !ok || n.Value != 42 {
		t.Errorf("c's cached term = %#v, want 42", stored.Term)
	}
}
