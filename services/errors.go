package services

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"
)

// ErrNotFound is returned by operations that need an existing parent
// row (advance, apply, update) when the reference resolves to nothing.
// Plain lookups return a nil result instead.
var ErrNotFound = errors.New("not found")

// NameTakenError reports a unique-name collision in user-facing terms
type NameTakenError struct {
	Entity string
	Name   string
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("a %s named %q already exists", e.Entity, e.Name)
}

// translateWriteError converts store-level constraint failures into the
// service error taxonomy. Raw driver error text never escapes upward.
func translateWriteError(entity, name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &NameTakenError{Entity: entity, Name: name}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%s references a record that does not exist", entity)
	}
	return err
}

// IsValidationError reports whether err describes rejected user input
func IsValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}

// IsConflictError reports whether err is a unique-name collision
func IsConflictError(err error) bool {
	var nameTaken *NameTakenError
	return errors.As(err, &nameTaken)
}

// enumValues adapts a typed enum slice for validation.In
func enumValues[T ~string](vals []T) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
