package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Record is implemented by a pointer to every entity kind kept in a store.
type Record interface {
	GetID() uint
	SetID(id uint)
	// Prepare resets server-owned fields before the first insert: it stamps
	// CreatedAt, clears lifecycle timestamps and fills status defaults.
	Prepare(now time.Time)
	// Field returns the value of a filterable column. Unset optional foreign
	// keys report ok=false so they never match an equality filter.
	Field(column string) (any, bool)
	Validate() error
}

// RecordPtr constrains generic code to pointers of entity structs.
type RecordPtr[E any] interface {
	*E
	Record
}

// Patch is a partial update of E. Only fields that were set are merged.
type Patch[E any] interface {
	Apply(e *E)
	// StatusChange returns the requested status, or nil if the patch leaves
	// status untouched.
	StatusChange() *string
}

// Lifecycle is implemented by kinds whose terminal status stamps a timestamp.
type Lifecycle interface {
	TerminalStatus() string
	CurrentStatus() string
	TerminalAt() *time.Time
	MarkTerminal(now time.Time)
}

// Uniquer lists columns that must be unique within a kind.
type Uniquer interface {
	UniqueFields() []string
}

// FieldError describes one rejected field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError is returned when a record is missing required fields or
// carries malformed values.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Rule)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule}}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateStruct runs the binding rules declared on s.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: rule})
	}
	return out
}

// optionalID resolves a nullable foreign key for Field lookups.
func optionalID(id *uint) (any, bool) {
	if id == nil {
		return nil, false
	}
	return *id, true
}

func defaultString(s *string, def string) {
	if *s == "" {
		*s = def
	}
}
