// Package apperr holds the error taxonomy shared by services and the HTTP
// layer: field validation failures, missing resources and state conflicts.
package apperr

import (
	"errors"
	"fmt"
	"sort"
)

var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Resource string
	ID       any
}

func NotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// ValidationError collects messages per request field, keeping fields in the
// order they were first reported.
type ValidationError struct {
	Fields map[string][]string
	order  []string
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func Invalid(field, msg string) *ValidationError {
	return NewValidation().Add(field, msg)
}

func (e *ValidationError) Add(field, msg string) *ValidationError {
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = append(e.Fields[field], msg)
	return e
}

func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// Merge copies the fields of other into e.
func (e *ValidationError) Merge(other *ValidationError) *ValidationError {
	if other == nil {
		return e
	}
	for _, f := range other.FieldNames() {
		for _, m := range other.Fields[f] {
			e.Add(f, m)
		}
	}
	return e
}

// OrNil returns nil when nothing was collected, so callers can
// `return ve.OrNil()` without handing back a typed nil.
func (e *ValidationError) OrNil() error {
	if e == nil || e.Empty() {
		return nil
	}
	return e
}

// FieldNames returns fields in insertion order; fields set directly on the
// map come last, sorted.
func (e *ValidationError) FieldNames() []string {
	seen := make(map[string]bool, len(e.order))
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.order {
		if _, ok := e.Fields[f]; ok && !seen[f] {
			out = append(out, f)
			seen[f] = true
		}
	}
	var rest []string
	for f := range e.Fields {
		if !seen[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func (e *ValidationError) Error() string {
	names := e.FieldNames()
	if len(names) == 0 {
		return "The given data was invalid."
	}
	first := e.Fields[names[0]][0]
	if extra := len(names) - 1; extra > 0 {
		word := "errors"
		if extra == 1 {
			word = "error"
		}
		return fmt.Sprintf("%s (and %d more %s)", first, extra, word)
	}
	return first
}

// ConflictError reports an operation attempted against a resource whose
// status does not allow it.
type ConflictError struct {
	Message string
}

func Conflict(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string { return e.Message }
