// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	old := zapLevel.Level()
	t.Cleanup(func() { zapLevel.SetLevel(old) })

	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{"verbose", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		SetLevel(tt.in)
		if got := zapLevel.Level(); got != tt.want {
			t.Errorf("SetLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	old := std
	oldLevel := zapLevel.Level()
	t.Cleanup(func() {
		std = old
		zapLevel.SetLevel(oldLevel)
	})

	var buf bytes.Buffer
	std = newLogger(zapcore.AddSync(&buf))

	SetLevel(LevelWarn)
	Debugf("hidden %d", 1)
	Infof("hidden %d", 2)
	Warnf("shown %d", 3)
	Errorf("shown %d", 4)
	if err := Sync(); err != nil {
		t.Fatalf("Sync error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains entries below the warn level:\n%s", out)
	}
	for _, want := range []string{"WARN", "shown 3", "ERROR", "shown 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestCallerIsHelperSite(t *testing.T) {
	old := std
	oldLevel := zapLevel.Level()
	t.Cleanup(func() {
		std = old
		zapLevel.SetLevel(oldLevel)
	})

	var buf bytes.Buffer
	std = newLogger(zapcore.AddSync(&buf))
	SetLevel(LevelDebug)
	Debugf("where")

	out := buf.String()
	if !strings.Contains(out, "log/log_test.go:") {
		t.Errorf("caller is not the helper call site:\n%s", out)
	}
	if strings.Contains(out, "log/log.go:") {
		t.Errorf("caller points into the log package:\n%s", out)
	}
}
