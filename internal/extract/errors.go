package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is matched by errors.Is for files whose extension has no extractor.
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrExtractionFailure is matched by errors.Is for corrupt or unreadable documents.
	ErrExtractionFailure = errors.New("extraction failed")
)

// Kind classifies an extraction error.
type Kind int

const (
	KindUnsupportedFormat Kind = iota + 1
	KindExtractionFailure
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnsupportedFormat:
		return "unsupported_format"
	case KindExtractionFailure:
		return "extraction_failure"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat
	case KindExtractionFailure:
		return ErrExtractionFailure
	default:
		return nil
	}
}

// Error is returned by Extract. Err is the underlying cause and may be nil for unsupported formats.
type Error struct {
	Kind     Kind
	Filename string
	Ext      string
	Err      error
}

func (e *Error) Error() string {
	if e.Kind == KindUnsupportedFormat {
		return fmt.Sprintf("%s: %v: %q", e.Filename, ErrUnsupportedFormat, e.Ext)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Filename, ErrExtractionFailure)
	}
	return fmt.Sprintf("%s: %v: %v", e.Filename, ErrExtractionFailure, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of err, or 0 when err is not an extraction error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
