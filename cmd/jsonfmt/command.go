// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/jsontree/jsontree"
	"github.com/jsontree/jsontree/internal/log"
)

const stdinName = "-"

// isStdin reports whether name selects standard input.
// kingpin delivers a bare "-" argument as the empty string.
func isStdin(name string) bool {
	return name == stdinName || name == ""
}

// globals holds the flags shared by every command.
type globals struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	maxDepth       int
	strict         bool
	legacyLiterals bool
	logLevel       string
}

func (g *globals) parseOptions() []jsontree.Options {
	return []jsontree.Options{
		jsontree.MaxDepth(g.maxDepth),
		jsontree.StrictNumbers(g.strict),
		jsontree.LegacyLiterals(g.legacyLiterals),
	}
}

// read returns the contents of the named file, or of standard input for "-".
func (g *globals) read(name string) ([]byte, error) {
	var b []byte
	var err error
	if isStdin(name) {
		b, err = io.ReadAll(g.stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", displayName(name))
	}
	log.Debugf("read %s from %s", humanize.Bytes(uint64(len(b))), displayName(name))
	return b, nil
}

// each parses every input in turn and calls fn for the well-formed ones.
// Malformed inputs are reported to stderr and counted; I/O errors abort.
func (g *globals) each(files []string, fn func(name string, v jsontree.Value) error) error {
	log.SetLevel(g.logLevel)
	if len(files) == 0 {
		files = []string{stdinName}
	}
	var failed int
	for _, name := range files {
		src, err := g.read(name)
		if err != nil {
			return err
		}
		v, err := jsontree.Parse(src, g.parseOptions()...)
		if err != nil {
			failed++
			reportError(g.stderr, displayName(name), src, err)
			continue
		}
		if err := fn(displayName(name), v); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d inputs are malformed", failed, len(files))
	}
	return nil
}

func displayName(name string) string {
	if isStdin(name) {
		return "<stdin>"
	}
	return name
}

// reportError writes err to w. For syntax errors it also writes the
// offending line of src with a caret under the reported offset.
func reportError(w io.Writer, name string, src []byte, err error) {
	red := color.New(color.FgRed)
	red.Fprintf(w, "%s: %v\n", name, err)

	var serr *jsontree.SyntacticError
	if !errors.As(err, &serr) {
		return
	}
	off := int(min(serr.ByteOffset, int64(len(src))))
	start := bytes.LastIndexByte(src[:off], '\n') + 1
	end := len(src)
	if i := bytes.IndexByte(src[off:], '\n'); i >= 0 {
		end = off + i
	}
	line := bytes.TrimSuffix(src[start:end], []byte("\r"))

	gutter := fmt.Sprintf("%5d | ", bytes.Count(src[:off], []byte("\n"))+1)
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	// Tabs are kept so the caret lines up under the original text.
	pad := make([]byte, 0, off-start)
	for _, c := range src[start:off] {
		if c == '\t' {
			pad = append(pad, '\t')
		} else {
			pad = append(pad, ' ')
		}
	}
	fmt.Fprintf(w, "%s%s", strings.Repeat(" ", len(gutter)), pad)
	red.Fprintln(w, "^")
}

// fmtCommand prints each input in canonical form.
type fmtCommand struct {
	*globals
	files *[]string

	indent         int
	prefix         int
	tabs           bool
	insertionOrder bool
	rawStrings     bool
	compact        bool
}

func addFmtCommand(app *kingpin.Application, g *globals, cfg config) {
	cmd := &fmtCommand{globals: g}
	c := app.Command("fmt", "Print each input in canonical indented form.").Action(cmd.run)
	c.Flag("indent", "Number of spaces per nesting level.").
		Default(strconv.Itoa(cfg.Indent)).IntVar(&cmd.indent)
	c.Flag("prefix", "Render as if the output started at this column.").
		Default("0").IntVar(&cmd.prefix)
	c.Flag("tabs", "Indent with tabs instead of spaces.").BoolVar(&cmd.tabs)
	c.Flag("insertion-order", "Print object members in input order instead of sorted by name.").
		Default(strconv.FormatBool(cfg.InsertionOrder)).BoolVar(&cmd.insertionOrder)
	c.Flag("raw-strings", "Print strings without escaping.").BoolVar(&cmd.rawStrings)
	c.Flag("compact", "Print each value on a single line.").BoolVar(&cmd.compact)
	cmd.files = c.Arg("file", "Files to format; standard input if none.").Strings()
}

func (cmd *fmtCommand) renderOptions() ([]jsontree.Options, error) {
	if cmd.indent < 0 || cmd.prefix < 0 {
		return nil, errors.Errorf("indent and prefix must not be negative, got %d and %d", cmd.indent, cmd.prefix)
	}
	indent := strings.Repeat(" ", cmd.indent)
	if cmd.tabs {
		indent = "\t"
	}
	return []jsontree.Options{
		jsontree.WithIndent(indent),
		jsontree.WithIndentPrefix(strings.Repeat(" ", cmd.prefix)),
		jsontree.InsertionOrder(cmd.insertionOrder),
		jsontree.RawStrings(cmd.rawStrings),
		jsontree.Compact(cmd.compact),
	}, nil
}

func (cmd *fmtCommand) run(*kingpin.ParseContext) error {
	opts, err := cmd.renderOptions()
	if err != nil {
		return err
	}
	return cmd.each(*cmd.files, func(name string, v jsontree.Value) error {
		b := jsontree.AppendRender(nil, v, opts...)
		b = append(b, '\n')
		if _, err := cmd.stdout.Write(b); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
		log.Infof("formatted %s (%s)", name, humanize.Bytes(uint64(len(b))))
		return nil
	})
}

// checkCommand reports whether each input is well-formed.
type checkCommand struct {
	*globals
	files *[]string
}

func addCheckCommand(app *kingpin.Application, g *globals) {
	cmd := &checkCommand{globals: g}
	c := app.Command("check", "Report whether each input is well-formed.").Action(cmd.run)
	cmd.files = c.Arg("file", "Files to check; standard input if none.").Strings()
}

func (cmd *checkCommand) run(*kingpin.ParseContext) error {
	green := color.New(color.FgGreen)
	return cmd.each(*cmd.files, func(name string, v jsontree.Value) error {
		fmt.Fprintf(cmd.stdout, "%s: ", name)
		green.Fprintln(cmd.stdout, "ok")
		log.Debugf("%s holds a top-level %v", name, v.Kind())
		return nil
	})
}
