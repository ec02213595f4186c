package media

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by every FieldError caused by an absent key.
	ErrMissingField = errors.New("missing field")

	// ErrMalformedField is matched by every FieldError caused by a value of the wrong shape.
	ErrMalformedField = errors.New("malformed field")
)

// FieldError reports a record field that could not be resolved for the requested variant.
type FieldError struct {
	// Field is the record key (or keys, joined by "|" for fallbacks) that failed.
	Field string
	// Record identifies the offending record.
	Record string
	// Reason is a short description for malformed values.
	Reason string

	kind error
}

func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %q in record %s: %s", e.kind, e.Field, e.Record, e.Reason)
	}

	return fmt.Sprintf("%s %q in record %s", e.kind, e.Field, e.Record)
}

// Is reports whether target is ErrMissingField or ErrMalformedField matching this error.
func (e *FieldError) Is(target error) bool {
	return target == e.kind
}

func missingField(r Record, field string) error {
	return &FieldError{Field: field, Record: r.Ident(), kind: ErrMissingField}
}

func malformedField(r Record, field, reason string) error {
	return &FieldError{Field: field, Record: r.Ident(), Reason: reason, kind: ErrMalformedField}
}

// RecordError ties a parse failure to the record's position within a batch.
type RecordError struct {
	// Position is the zero-based offset of the record in the classified batch.
	Position int
	Err      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Position, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
