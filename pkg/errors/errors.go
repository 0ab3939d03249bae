// Package errors provides structured error handling for lattice.
//
// Layout and paint never fail; errors only come from the edges of the
// toolkit such as theme files, configuration, and output encoding, plus
// panics recovered from widget code during a frame.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindParsing indicates malformed input such as a theme file.
	KindParsing
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindRender indicates a failure producing output from a renderer.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindIO indicates a filesystem or stream failure.
	KindIO
	// KindUsage indicates a bad command line.
	KindUsage
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindIO:
		return "io"
	case KindUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// Error represents a structured lattice error.
type Error struct {
	// Op is the operation that failed (e.g., "theme.LoadFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an Error for op. err may be nil only for programmer mistakes.
func E(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError describes a value that could not be decoded.
type ParseError struct {
	// Source names the input, such as a file or "json".
	Source string
	// Field is the field or key that failed.
	Field string
	// Got is the offending value.
	Got any
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Got)
	}
	return fmt.Sprintf("%s: invalid %s: %v", e.Source, e.Field, e.Got)
}

// ErrorHandler receives errors reported by lattice.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
