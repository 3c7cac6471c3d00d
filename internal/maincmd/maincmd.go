// Package maincmd implements the mylangc driver's command set: tokenize,
// parse, resolve and emit. Each command reads source files given as
// arguments and writes the corresponding artifact(s) spec §6 names
// (.tokens, .ast, .ll) either alongside the source file or under
// --emit-dir. The lang/* packages themselves never touch a filesystem or
// print anything; all I/O lives here, matching nenuphar's own
// lang/*-is-a-silent-library, internal/maincmd-does-all-I/O split.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "mylangc"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<path>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<path>...]
       %[1]s -h|--help
       %[1]s -v|--version

Compiler front end for the mylang programming language: tokenizer, parser
and name resolver, plus a textual LLVM IR emitter.

The <command> can be one of:
       tokenize                  Scan the given files and write a
                                  pretty-printed token dump (.tokens) for
                                  each.
       parse                     Parse the given files and write an AST
                                  dump (.ast) for each, without running
                                  name resolution.
       resolve                   Parse and resolve the given files and
                                  write a resolved AST dump (.ast) for
                                  each.
       emit                      Run the full pipeline (tokenize, parse,
                                  resolve, generate) and write all three
                                  artifacts (.tokens, .ast, .ll) for each
                                  file.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --emit-dir DIR            Write artifacts under DIR instead of
                                  alongside each source file.

More information on the mylangc repository:
       https://github.com/marc9622/mylangc
`, binName)
)

// Cmd is the flag.Parse-compatible command struct mainer.Parser fills in,
// matching nenuphar's internal/maincmd.Cmd shape (field tags, Validate,
// Main), extended with --emit-dir.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	EmitDir string `flag:"emit-dir"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, string, []string) error
}

func (c *Cmd) SetArgs(args []string) { c.args = args }

func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: at least one file must be provided", cmdName)
	}

	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.EmitDir, c.args[1:]); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds reflects over v's methods to find the ones matching the
// (context.Context, mainer.Stdio, string, []string) error command shape,
// keyed by lowercased method name. Kept verbatim from the teacher: this is
// generic dispatch plumbing, not domain logic.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, string, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, string, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 5 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.String {
			continue
		}
		if p4 := mt.In(4); p4.Kind() != reflect.Slice || p4.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, string, []string) error)
	}
	return cmds
}

// artifactPath returns the path an artifact with the given suffix (e.g.
// ".tokens") should be written to for source file srcPath: under emitDir if
// non-empty, otherwise alongside srcPath (spec §6's default).
func artifactPath(emitDir, srcPath, suffix string) string {
	name := filepath.Base(srcPath) + suffix
	if emitDir == "" {
		return srcPath + suffix
	}
	return filepath.Join(emitDir, name)
}
