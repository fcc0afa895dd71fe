package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// captureCrash swaps the exit and stderr hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, <-chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)

	oldErr, oldExit := stderr, exit
	stderr = &buf
	exit = func(code int) { codes <- code }
	t.Cleanup(func() {
		stderr, exit = oldErr, oldExit
		RegisterScreen(nil)
	})
	return &buf, codes
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	buf, codes := captureCrash(t)
	HandleCrash(nil)

	select {
	case <-codes:
		t.Error("nil recovery should not exit")
	default:
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestHandleCrash_FinalizesScreen(t *testing.T) {
	buf, codes := captureCrash(t)

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	RegisterScreen(sim)

	HandleCrash("boom")

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("Missing crash banner: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Stack Trace:") {
		t.Error("Missing stack trace")
	}

	mu.Lock()
	defer mu.Unlock()
	if screen != nil {
		t.Error("Screen should be released after a crash")
	}
}

func TestGuard_RecoversPanic(t *testing.T) {
	buf, codes := captureCrash(t)

	if err := Guard(func() error { panic("worker failed") })(); err != nil {
		t.Errorf("Expected nil error after recovery, got %v", err)
	}

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "worker failed") {
		t.Errorf("Missing panic value: %q", buf.String())
	}
}

func TestGuard_PassesError(t *testing.T) {
	captureCrash(t)

	want := bytes.ErrTooLarge
	if err := Guard(func() error { return want })(); err != want {
		t.Errorf("Expected %v, got %v", want, err)
	}
}
