package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// onCrash restores the terminal before the report is written
var onCrash atomic.Pointer[func()]

// exit is swapped in tests
var exit = os.Exit

// SetCrashHook registers the cleanup run ahead of a crash report; nil clears it
func SetCrashHook(fn func()) {
	if fn == nil {
		onCrash.Store(nil)
		return
	}
	onCrash.Store(&fn)
}

// HandleCrash reports a recovered panic value and exits; nil is ignored
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if fn := onCrash.Load(); fn != nil {
		(*fn)()
	}
	writeCrashReport(os.Stderr, r, debug.Stack())
	os.Stderr.Sync()
	exit(1)
}

// writeCrashReport uses CRLF since the terminal may still be in raw mode
func writeCrashReport(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\r\n\x1b[31marena crashed: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "goroutine stack:\r\n%s\r\n", stack)
}

// Go starts fn on its own goroutine with the crash handler attached
func Go(fn func()) {
	go func() {
		defer func() { HandleCrash(recover()) }()
		fn()
	}()
}
