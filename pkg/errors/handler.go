package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type handlerSlot struct{ h ErrorHandler }

var current atomic.Pointer[handlerSlot]

// SetHandler installs the handler that receives reported errors and
// recovered panics. Pass nil to restore the default, a non-verbose
// LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		current.Store(nil)
		return
	}
	current.Store(&handlerSlot{h: h})
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	if s := current.Load(); s != nil {
		return s.h
	}
	return &LogHandler{}
}

// Wrap returns err as an *Error. An *Error is returned unchanged; any other
// error is wrapped with op and kind. Wrap returns nil for a nil err.
func Wrap(op string, kind ErrorKind, err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return E(op, kind, err)
}

// Report sends err to the installed handler, stamping it if needed.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic sends a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress. It must be deferred directly:
//
//	defer errors.Recover("core.Frame")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	}
}

// CaptureStack returns the calling goroutine's stack, one function per
// entry followed by its file and line. Runtime frames and the recovery
// helpers are omitted, so a trace captured during a panic starts at the
// code that panicked.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !skipFrame(frame.Function) {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}

const pkgPath = "github.com/go-drift/lattice/pkg/errors."

func skipFrame(fn string) bool {
	switch fn {
	case pkgPath + "Recover", pkgPath + "CaptureStack":
		return true
	}
	return strings.HasPrefix(fn, "runtime.") || strings.HasPrefix(fn, "internal/runtime/")
}
