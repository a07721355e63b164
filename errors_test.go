package gofac

import (
	"errors"
	"fmt"
	"testing"
)

var allErrors = []error{
	ErrNotFunc,
	ErrNoReturn,
	ErrRegisterDuplicate,
	ErrServiceNotRegistered,
	ErrCreateInstanceFailed,
	ErrNotConcreteType,
	ErrResolveCircularDependency,
	ErrInvalidInterfaceType,
	ErrInvalidOutPtr,
	ErrTypeConvertFailed,
	ErrScopedOnRootContainer,
	ErrTransientInstance,
	ErrNilInstance,
	ErrNilServiceType,
	ErrNilConditional,
	ErrAmbiguousConditional,
	ErrUnknownLifetime,
}

// TestErrorMessages tests that error messages are not empty
func TestErrorMessages(t *testing.T) {
	for _, err := range allErrors {
		if err == nil || err.Error() == "" {
			t.Errorf("Error message should not be empty for error: %v", err)
		}
	}
}

// TestErrorsAreDistinct tests that no two sentinels match each other
func TestErrorsAreDistinct(t *testing.T) {
	for i, a := range allErrors {
		for j, b := range allErrors {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}

// TestErrorWrapping tests that wrapped errors keep their identity
func TestErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w, type: %s", ErrRegisterDuplicate, "*gofac.TestService")
	if !errors.Is(wrapped, ErrRegisterDuplicate) {
		t.Error("Wrapped error should still be identifiable with errors.Is")
	}

	joined := errors.Join(ErrNotFunc, errors.New("additional context"))
	if !errors.Is(joined, ErrNotFunc) {
		t.Error("Joined error should still be identifiable with errors.Is")
	}
}
