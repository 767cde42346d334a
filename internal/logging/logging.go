// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package logging provides the leveled, colorized stdout logger shared by
// the warm-cache utility. Levels are tagged [INFO]/[WARN]/[ERROR] and
// colored when stdout is a terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stdout
	debugOn           = os.Getenv("DEBUG") != ""

	debugTag = color.New(color.FgCyan).Sprint("[DEBUG]")
	infoTag  = color.New(color.FgGreen).Sprint("[INFO]")
	warnTag  = color.New(color.FgYellow).Sprint("[WARN]")
	errorTag = color.New(color.FgRed).Sprint("[ERROR]")
)

// SetOutput redirects log output. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetDebug toggles debug-level output. The DEBUG environment variable
// enables it by default.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugOn = enabled
}

func logf(tag, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		tag,
		fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) {
	mu.Lock()
	enabled := debugOn
	mu.Unlock()
	if !enabled {
		return
	}
	logf(debugTag, format, args...)
}

func Info(format string, args ...any) {
	logf(infoTag, format, args...)
}

func Warn(format string, args ...any) {
	logf(warnTag, format, args...)
}

func Error(format string, args ...any) {
	logf(errorTag, format, args...)
}
