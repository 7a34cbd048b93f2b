package lnglat

import (
	"errors"
	"fmt"
)

// Error is the error type shared by the coordinate and map option layers.
type Error struct {
	Err     error
	Message string
	Kind    Kind
}

// Kind classifies an Error.
type Kind int

const (
	// KindUnknown is the zero value and never produced by this module.
	KindUnknown Kind = iota
	// KindShapeMismatch means the input matched none of the accepted shapes.
	KindShapeMismatch
	// KindConversion means a value could not be represented in the payload.
	KindConversion
	// KindConstruction means the map constructor rejected a finalized payload.
	KindConstruction
)

func (k Kind) String() string {
	switch k {
	case KindShapeMismatch:
		return "shape mismatch"
	case KindConversion:
		return "conversion failure"
	case KindConstruction:
		return "construction failure"
	default:
		return "unknown"
	}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsShapeMismatch reports whether err carries a KindShapeMismatch Error.
func IsShapeMismatch(err error) bool {
	return hasKind(err, KindShapeMismatch)
}

// IsConversionFailure reports whether err carries a KindConversion Error.
func IsConversionFailure(err error) bool {
	return hasKind(err, KindConversion)
}

// IsConstructionFailure reports whether err carries a KindConstruction Error.
func IsConstructionFailure(err error) bool {
	return hasKind(err, KindConstruction)
}

func hasKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}

func shapeMismatch(format string, args ...any) *Error {
	return &Error{
		Kind:    KindShapeMismatch,
		Message: "lnglat: " + fmt.Sprintf(format, args...),
	}
}
