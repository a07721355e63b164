package validation

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// Validator validates instances of T.
type Validator[T any] interface {
	Validate(instance T) *Result
	ValidateContext(ctx context.Context, instance T) (*Result, error)
}

// Failure is a single rule violation.
type Failure struct {
	Property string // dotted path below the validated instance, empty for the instance itself
	Tag      string // rule name, e.g. "required"
	Param    string // rule parameter, e.g. "3" for min=3
	Message  string
	Value    any
}

func (f *Failure) String() string {
	if f.Property == "" {
		return f.Message
	}
	return f.Property + ": " + f.Message
}

// Result is the outcome of a validation run. The zero value is a successful result.
type Result struct {
	Errors []*Failure
}

// IsValid reports whether no failure was recorded.
func (r *Result) IsValid() bool {
	return r == nil || len(r.Errors) == 0
}

// Add records failures and returns r.
func (r *Result) Add(failures ...*Failure) *Result {
	for _, f := range failures {
		if f != nil {
			r.Errors = append(r.Errors, f)
		}
	}
	return r
}

// Merge appends the failures of other results, in order.
func (r *Result) Merge(others ...*Result) *Result {
	for _, o := range others {
		if o != nil {
			r.Add(o.Errors...)
		}
	}
	return r
}

// Err returns nil for a valid result, otherwise a *FailuresError.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return &FailuresError{Failures: r.Errors}
}

// FailuresError carries the failures of an invalid Result.
type FailuresError struct {
	Failures []*Failure
}

func (e *FailuresError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.String()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// serviceTypeOf returns the reflect.Type of Validator[T].
func serviceTypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*Validator[T])(nil)).Elem()
}
