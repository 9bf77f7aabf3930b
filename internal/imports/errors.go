package imports

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nacre-lang/nacre/internal/term"
)

// ImportError is the single error kind this stage produces: the
// resolver could not locate, read or parse an imported file. Pos is
// the position of the importing node, not of anything inside the
// target file.
type ImportError struct {
	Path string
	Pos  term.Pos
	Err  error
}

func (e *ImportError) Error() string {
	if e.Pos.IsKnown() {
		return fmt.Sprintf("import of %q at %s failed: %v", e.Path, e.Pos, e.Err)
	}
	return fmt.Sprintf("import of %q failed: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Render formats the error for the given output file, with ANSI color
// on the header when the file is a terminal.
func (e *ImportError) Render(f *os.File) string {
	header := "import error"
	if f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		header = "\x1b[1;31m" + header + "\x1b[0m"
	}
	return fmt.Sprintf("%s: %s", header, e.Error())
}
