// Package diag holds the process-wide last-error slot every container writes
// to before reporting a failure.
package diag

import (
	"sync"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// MaxMessageLen bounds the stored message, longer ones are truncated.
const MaxMessageLen = 100

var (
	mu     sync.Mutex
	last   string
	logger = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// GetError returns the latest recorded message, or "" if nothing failed yet.
func GetError() string {
	mu.Lock()
	defer mu.Unlock()
	return last
}

// SetError overwrites the slot. A message cut at MaxMessageLen keeps whole
// runes only.
func SetError(msg string) {
	if len(msg) > MaxMessageLen {
		cut := MaxMessageLen
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	mu.Lock()
	last = msg
	mu.Unlock()
}

// Clear empties the slot.
func Clear() {
	SetError("")
}

// SetLogger replaces the logger failures are reported to. A nil logger
// restores the default one.
func SetLogger(l *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = newLogger()
	}
	logger = l
}

// SetLevel adjusts the verbosity of the current logger.
func SetLevel(level logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetLevel(level)
}

// Logger returns the logger failures are reported to.
func Logger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
