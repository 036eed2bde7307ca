package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/jwalton/gchalk"
)

// Logger loggs pretty stuff to the console. It is safe for concurrent use
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	emojis    bool
	indention int
}

// helper for indention
func (l *Logger) println(a string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, strings.Repeat(" ", l.indention)+a)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// Headline prints a cyan bold line
func (l *Logger) Headline(s string) {
	l.println(gchalk.WithCyan().Bold(s))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Infof is Info with formatting
func (l *Logger) Infof(format string, a ...interface{}) {
	l.Info(fmt.Sprintf(format, a...))
}

// Log prints a gray line
func (l *Logger) Log(s string) {
	l.println(gchalk.Gray(s))
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	l.println(l.sprintEmoji("⚠️ ") + gchalk.WithYellow().Bold(s))
}

// Warnf is Warn with formatting
func (l *Logger) Warnf(format string, a ...interface{}) {
	l.Warn(fmt.Sprintf(format, a...))
}

// Fail will print the given message and then exit 1
func (l *Logger) Fail(s string) {
	l.println(l.sprintEmoji("💣") + gchalk.WithRed().Bold("Error: ") + gchalk.WithWhite().Bold(s))
	os.Exit(1)
}

// Indented returns a logger writing to the same output with n more spaces of indention
func (l *Logger) Indented(n int) *Logger {
	return &Logger{out: l.out, emojis: l.emojis, indention: l.indention + n}
}

// New returns a new Logger writing to stdout
func New() *Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter returns a new Logger writing to w
func NewWithWriter(w io.Writer) *Logger {
	emojis := runtime.GOOS != "windows"

	// disable color for CI
	if os.Getenv("CI") != "" {
		emojis = false
		gchalk.SetLevel(gchalk.LevelNone)
	}
	return &Logger{out: w, emojis: emojis}
}

// Discard returns a Logger that drops everything. Useful for tests
func Discard() *Logger {
	return &Logger{out: io.Discard}
}
