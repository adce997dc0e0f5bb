// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/joeshaw/envdecode"
	"github.com/pkg/errors"
)

// config holds flag defaults taken from the environment.
type config struct {
	// Indent is the number of spaces per nesting level. ENV: JSONFMT_INDENT
	Indent int `env:"JSONFMT_INDENT,default=2"`
	// MaxDepth bounds nesting while parsing. ENV: JSONFMT_MAX_DEPTH
	MaxDepth int `env:"JSONFMT_MAX_DEPTH,default=1000"`
	// LogLevel is one of debug, info, warn or error. ENV: JSONFMT_LOG_LEVEL
	LogLevel string `env:"JSONFMT_LOG_LEVEL,default=warn"`
	// InsertionOrder keeps object members in input order. ENV: JSONFMT_INSERTION_ORDER
	InsertionOrder bool `env:"JSONFMT_INSERTION_ORDER,default=false"`
	// Strict enables strict number scanning. ENV: JSONFMT_STRICT
	Strict bool `env:"JSONFMT_STRICT,default=false"`
}

// loadConfig fails on values that cannot be parsed rather than
// leaving the affected field at its zero value.
func loadConfig() (config, error) {
	var cfg config
	if err := envdecode.StrictDecode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return config{}, errors.Wrap(err, "loading configuration from environment")
	}
	return cfg, nil
}
