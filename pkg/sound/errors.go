// ABOUTME: Error values reported by sound operations
// ABOUTME: Sentinel kinds plus a structured Error carrying operation context
package sound

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a path does not exist or cannot be read
	ErrNotFound = errors.New("file not found")
	// ErrFileFormat means a file is not a decodable PCM container
	ErrFileFormat = errors.New("unsupported file format")
	// ErrInvalidBuffer means a buffer length is not a whole number of frames
	ErrInvalidBuffer = errors.New("invalid buffer")
	// ErrInvalidFrame means a frame does not have exactly FrameSize bytes
	ErrInvalidFrame = errors.New("invalid frame")
	// ErrIndexOutOfRange means a frame, sample or channel index is outside the sound
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrIO means writing to disk failed
	ErrIO = errors.New("i/o error")
)

// Operation names the sound operation that failed
type Operation string

const (
	OpNew       Operation = "new"
	OpLoad      Operation = "load"
	OpImport    Operation = "import"
	OpWrite     Operation = "write"
	OpSetBuffer Operation = "set_buffer"
	OpGetFrame  Operation = "get_frame"
	OpSetFrame  Operation = "set_frame"
	OpGetSample Operation = "get_sample"
	OpSetSample Operation = "set_sample"
	OpPlay      Operation = "play"
)

// Error describes a failed sound operation.
// errors.Is matches both Kind and the wrapped cause.
type Error struct {
	Op     Operation
	Path   string
	Detail string
	Kind   error
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("sound %s", e.Op)
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the error kind
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newPathError(op Operation, path string, kind, err error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

func newIndexError(op Operation, index, count int) *Error {
	return &Error{
		Op:     op,
		Kind:   ErrIndexOutOfRange,
		Detail: fmt.Sprintf("%d not in [0, %d)", index, count),
	}
}
