// Package core restores the terminal when a goroutine panics
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	mu     sync.Mutex
	screen tcell.Screen

	// Overridable for tests
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// RegisterScreen sets the screen finalized before a crash report is printed
// Pass nil once the screen is finalized normally
func RegisterScreen(s tcell.Screen) {
	mu.Lock()
	screen = s
	mu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before writing anything
	mu.Lock()
	s := screen
	screen = nil
	mu.Unlock()
	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	if f, ok := stderr.(*os.File); ok {
		f.Sync()
	}

	exit(1)
}

// Guard wraps an errgroup function so a panic restores the terminal before exiting
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
