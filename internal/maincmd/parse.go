package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/marc9622/mylangc/lang/ast"
	"github.com/marc9622/mylangc/lang/lexer"
	"github.com/marc9622/mylangc/lang/parser"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, emitDir string, args []string) error {
	return ParseFiles(ctx, stdio, emitDir, args...)
}

// ParseFiles runs only the parser stage (no name resolution) over each file
// and writes an AST dump to a sibling ".ast" file. A ScopedId's Name is
// always set regardless of resolution state, so the printer renders an
// unresolved tree just as readably as a resolved one.
func ParseFiles(ctx context.Context, stdio mainer.Stdio, emitDir string, files ...string) error {
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}

		p := parser.New(lexer.New(f))
		perr := p.ParseProgram()
		_ = f.Close()
		if perr != nil {
			fmt.Fprintln(stdio.Stderr, perr)
			return perr
		}

		out := artifactPath(emitDir, path, ".ast")
		w, err := os.Create(out)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		printer := ast.Printer{Output: w}
		printErr := printer.Print(p.Root())
		closeErr := w.Close()
		if printErr != nil {
			fmt.Fprintln(stdio.Stderr, printErr)
			return printErr
		}
		if closeErr != nil {
			fmt.Fprintln(stdio.Stderr, closeErr)
			return closeErr
		}
		fmt.Fprintf(stdio.Stdout, "wrote %s\n", out)
	}
	return nil
}
