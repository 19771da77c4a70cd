package registry

import (
	"errors"
	"fmt"
)

// Kind classifies a registry failure. Every error the service returns
// carries exactly one kind so transport adapters can map it to a status
// without string matching.
type Kind int

const (
	// KindInvalidArgument: input failed a local, stateless check.
	KindInvalidArgument Kind = iota + 1
	// KindNotFound: a syntactically valid id resolved to no record.
	KindNotFound
	// KindConflict: a create would violate a uniqueness constraint.
	KindConflict
	// KindInternal: the store failed for a reason not attributable to
	// caller input, including the pre-check/insert race on uniqueness.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Error is the registry error type. Field names the offending input
// field when the failure is field-scoped.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on kind: errors.Is(err, &Error{Kind: KindNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Field == "" || t.Field == e.Field)
}

func invalidArgument(field, msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Field: field, Msg: msg}
}

func notFound(kind string) *Error {
	return &Error{Kind: KindNotFound, Msg: kind + " not found for the given id"}
}

func conflict(field, msg string) *Error {
	return &Error{Kind: KindConflict, Field: field, Msg: msg}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf extracts the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldOf returns the offending field of err, if any.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }
func IsNotFound(err error) bool        { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool        { return KindOf(err) == KindConflict }
func IsInternal(err error) bool        { return KindOf(err) == KindInternal }
