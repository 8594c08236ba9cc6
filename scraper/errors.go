package scraper

import (
	"errors"
	"fmt"
)

// ErrMissingField matches every *MissingFieldError.
var ErrMissingField = errors.New("missing field")

type Field int

const (
	FieldTitle Field = iota
	FieldAuthorAnchor
	FieldAuthor
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAuthorAnchor:
		return "author anchor"
	case FieldAuthor:
		return "author"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// MissingFieldError reports the pipeline stage whose markers were not found.
type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("failed to get %v", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
