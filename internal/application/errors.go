package application

import (
	"errors"
	"fmt"

	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// Sentinel errors for common conditions
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrEmptyInput        = errors.New("empty input")
	ErrBatchInProgress   = errors.New("a batch is already running")
	ErrNotConfirmed      = errors.New("confirmation required")
	ErrNotCustom         = errors.New("not a custom sector")
	ErrNothingToExport   = errors.New("nothing to export")
	ErrClassification    = errors.New("classification failed")
	ErrIndexOutOfRange   = domain.ErrIndexOutOfRange
	ErrUnsupportedFormat = ports.ErrUnsupportedFormat
	ErrReservedSector    = ports.ErrReservedSector
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ClassificationError wraps a failed lookup for one input
type ClassificationError struct {
	Input string
	Err   error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot classify %q: %v", e.Input, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}
