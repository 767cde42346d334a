// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })
	return &buf
}

func TestInfoTag(t *testing.T) {
	buf := captureOutput(t)

	Info("warming %d domains", 42)

	got := buf.String()
	if !strings.Contains(got, "[INFO]") {
		t.Errorf("Expected [INFO] tag, got %q", got)
	}
	if !strings.Contains(got, "warming 42 domains") {
		t.Errorf("Expected formatted message, got %q", got)
	}
}

func TestWarnAndErrorTags(t *testing.T) {
	buf := captureOutput(t)

	Warn("resolver unreachable")
	Error("database missing")

	got := buf.String()
	if !strings.Contains(got, "[WARN]") {
		t.Errorf("Expected [WARN] tag, got %q", got)
	}
	if !strings.Contains(got, "[ERROR]") {
		t.Errorf("Expected [ERROR] tag, got %q", got)
	}
}

func TestDebugSuppressedByDefault(t *testing.T) {
	buf := captureOutput(t)
	SetDebug(false)

	Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Debug output should be suppressed, got %q", buf.String())
	}

	SetDebug(true)
	t.Cleanup(func() { SetDebug(false) })

	Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected debug output when enabled, got %q", buf.String())
	}
}
