package importer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedContainer is reported when the container or its documents
	// cannot be turned into a score.
	ErrMalformedContainer = errors.New("malformed container")
	// ErrInvalidGesture is reported when a bend or whammy point list is out of range.
	ErrInvalidGesture = errors.New("invalid gesture")
	// ErrUnsupportedFormat is reported for files of a Guitar Pro generation this
	// package does not decode.
	ErrUnsupportedFormat = errors.New("format not supported")
)

// DecodeError locates a decoding failure. Kind is one of the sentinel errors of
// this package, Err is the underlying cause. Both match with errors.Is.
type DecodeError struct {
	Kind   error
	Entity string
	Path   string
	// Offset is the line of an XML syntax error or the byte offset within a
	// binary entry, 0 when unknown.
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Entity)
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at %d", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func malformed(entity, path string, err error) *DecodeError {
	return &DecodeError{Kind: ErrMalformedContainer, Entity: entity, Path: path, Err: err}
}

// danglingRef reports an id list entry pointing at no record.
func danglingRef(entity, id string) *DecodeError {
	return malformed(entity, "id "+id, errors.New("dangling reference"))
}
