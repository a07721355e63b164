package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates T with `validate:"..."` struct tags.
type StructValidator[T any] struct {
	validate *validator.Validate
}

// NewStructValidator uses validate, usually the shared instance registered in the
// container. nil creates a private instance.
func NewStructValidator[T any](validate *validator.Validate) *StructValidator[T] {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	return &StructValidator[T]{validate: validate}
}

func (v *StructValidator[T]) Validate(instance T) *Result {
	res, err := v.ValidateContext(context.Background(), instance)
	if err != nil {
		return (&Result{}).Add(&Failure{Tag: "invalid", Message: err.Error(), Value: instance})
	}
	return res
}

// ValidateContext returns an error only when ctx is done or T is not a struct
// type; rule violations are reported in the result.
func (v *StructValidator[T]) ValidateContext(ctx context.Context, instance T) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if isNil(instance) {
		return (&Result{}).Add(&Failure{Tag: "required", Message: "is required"}), nil
	}

	err := v.validate.StructCtx(ctx, instance)
	if err == nil {
		return &Result{}, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}
	result := &Result{}
	for _, fe := range fieldErrs {
		result.Add(&Failure{
			Property: propertyPath(fe),
			Tag:      fe.Tag(),
			Param:    fe.Param(),
			Message:  messageFor(fe),
			Value:    fe.Value(),
		})
	}
	return result, nil
}

func isNil(instance any) bool {
	if instance == nil {
		return true
	}
	rv := reflect.ValueOf(instance)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// propertyPath drops the root struct name: "Person.Address.City" -> "Address.City".
func propertyPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// messageFor turns a failed tag into a readable message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_with", "required_without":
		return "is required"
	case "min":
		// min is a length for strings, a value for numbers
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("must not contain more than %s items", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "e164":
		return "must be a valid phone number with country code"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "dive":
		return "some items are invalid"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
