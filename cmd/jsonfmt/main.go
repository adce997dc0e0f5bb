// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jsonfmt parses JSON documents and prints them in a canonical
// indented form, or checks that they are well-formed.
//
// Usage:
//
//	jsonfmt [flags] fmt [file...]
//	jsonfmt [flags] check [file...]
//
// With no files, or with "-", standard input is read.
// Flag defaults may be set through JSONFMT_* environment variables.
package main

import (
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/jsontree/jsontree/internal/log"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		exitWithErr(err)
	}
	app := newApp(cfg, os.Stdin, os.Stdout, os.Stderr)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		exitWithErr(err)
	}
	_ = log.Sync()
}

func exitWithErr(err error) {
	_ = log.Sync()
	color.New(color.FgRed).Fprintf(os.Stderr, "jsonfmt: %v\n", err)
	os.Exit(1)
}

func newApp(cfg config, stdin io.Reader, stdout, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("jsonfmt", "Parse JSON documents and print them in a canonical form.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	g := &globals{stdin: stdin, stdout: stdout, stderr: stderr}
	app.Flag("max-depth", "Maximum nesting depth of objects and arrays.").
		Default(strconv.Itoa(cfg.MaxDepth)).IntVar(&g.maxDepth)
	app.Flag("strict", "Require digits in every part of a number.").
		Default(strconv.FormatBool(cfg.Strict)).BoolVar(&g.strict)
	app.Flag("legacy-literals", "Recognize null, true and false by their first letter.").
		BoolVar(&g.legacyLiterals)
	app.Flag("log-level", "Minimum level of diagnostics written to standard error.").
		Default(cfg.LogLevel).EnumVar(&g.logLevel, log.Levels...)

	addFmtCommand(app, g, cfg)
	addCheckCommand(app, g)
	return app
}
