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

func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, emitDir string, args []string) error {
	return ResolveFiles(ctx, stdio, emitDir, args...)
}

// ResolveFiles runs the parser and then the resolver over each file and
// writes the resolved AST dump to a sibling ".ast" file. Unlike Parse, a
// resolution failure here (spec §4.4, §7) still aborts the whole file.
func ResolveFiles(ctx context.Context, stdio mainer.Stdio, emitDir string, files ...string) error {
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

		root, rerr := parser.Parse(lexer.New(f))
		_ = f.Close()
		if rerr != nil {
			fmt.Fprintln(stdio.Stderr, rerr)
			return rerr
		}

		out := artifactPath(emitDir, path, ".ast")
		w, err := os.Create(out)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		printer := ast.Printer{Output: w}
		printErr := printer.Print(root)
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
