package tui

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger is shared by the driver, menus and SSH server. Full-screen
// programs own the terminal, so the default discards output.
var logger = log.New(io.Discard)

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}
