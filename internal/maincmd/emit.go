package maincmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/marc9622/mylangc/lang/ast"
	"github.com/marc9622/mylangc/lang/irgen"
	"github.com/marc9622/mylangc/lang/lexer"
	"github.com/marc9622/mylangc/lang/parser"
)

func (c *Cmd) Emit(ctx context.Context, stdio mainer.Stdio, emitDir string, args []string) error {
	return EmitFiles(ctx, stdio, emitDir, args...)
}

// EmitFiles runs the full pipeline (tokenize, parse, resolve, generate) over
// each file and writes all three driver artifacts spec §6 names: ".tokens",
// ".ast" and ".ll". This is the command the "forthcoming" block/statement
// layer and type checker will eventually sit in front of; for now it is the
// only command that reaches lang/irgen.
func EmitFiles(ctx context.Context, stdio mainer.Stdio, emitDir string, files ...string) error {
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		if err := emitOne(stdio, emitDir, path); err != nil {
			return err
		}
	}
	return nil
}

func emitOne(stdio mainer.Stdio, emitDir, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	tokensOut := artifactPath(emitDir, path, ".tokens")
	if err := os.WriteFile(tokensOut, []byte(lexer.New(bytes.NewReader(src)).String()), 0o644); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	fmt.Fprintf(stdio.Stdout, "wrote %s\n", tokensOut)

	root, err := parser.Parse(lexer.New(bytes.NewReader(src)))
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	astOut := artifactPath(emitDir, path, ".ast")
	w, err := os.Create(astOut)
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
	fmt.Fprintf(stdio.Stdout, "wrote %s\n", astOut)

	ir, err := irgen.Generate(root)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	llOut := artifactPath(emitDir, path, ".ll")
	if err := os.WriteFile(llOut, []byte(ir), 0o644); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	fmt.Fprintf(stdio.Stdout, "wrote %s\n", llOut)

	return nil
}
