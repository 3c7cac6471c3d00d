package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/marc9622/mylangc/lang/lexer"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, emitDir string, args []string) error {
	return TokenizeFiles(ctx, stdio, emitDir, args...)
}

// TokenizeFiles scans each file in files and writes its pretty-printed
// token dump to a sibling ".tokens" file (spec §6). The first read or scan
// error aborts the whole run, matching the "first error aborts the
// pipeline" policy (spec §7) of the stages it fronts.
func TokenizeFiles(ctx context.Context, stdio mainer.Stdio, emitDir string, files ...string) error {
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

		tz := lexer.New(f)
		dump := tz.String()
		closeErr := f.Close()
		if closeErr != nil {
			fmt.Fprintln(stdio.Stderr, closeErr)
			return closeErr
		}

		out := artifactPath(emitDir, path, ".tokens")
		if err := os.WriteFile(out, []byte(dump), 0o644); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		fmt.Fprintf(stdio.Stdout, "wrote %s\n", out)
	}
	return nil
}
