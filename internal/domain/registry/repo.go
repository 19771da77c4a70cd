package registry

import (
	"context"
	"errors"
)

// ErrNoRecord is returned by a Repository when a lookup, partial update
// or delete targets an id (or unique value) with no matching row.
var ErrNoRecord = errors.New("no such record")

// Field names a uniqueness-bearing column usable with FindByField.
type Field string

const (
	FieldCPF Field = "cpf"
	FieldCRM Field = "crm"
)

// Repository is the store contract for one person-record collection.
// Implementations must enforce column-level uniqueness on cpf (and crm
// for the doctor collection) as the backstop behind the service's
// pre-checks.
type Repository interface {
	FindAll(ctx context.Context) ([]*Record, error)
	FindByID(ctx context.Context, id int64) (*Record, error)
	FindByField(ctx context.Context, field Field, value string) (*Record, error)
	Insert(ctx context.Context, rec *Record) error
	UpdatePartial(ctx context.Context, id int64, ch Changes) (*Record, error)
	Delete(ctx context.Context, id int64) error
}
