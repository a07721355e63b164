package validation

import (
	"context"
	"reflect"
	"sync"
)

// Fallback is the validator resolved for types without an implementation.
// It accepts every instance, including nil and zero values.
type Fallback[T any] struct{}

func (Fallback[T]) Validate(T) *Result { return &Result{} }

func (Fallback[T]) ValidateContext(context.Context, T) (*Result, error) { return &Result{}, nil }

// IsFallback reports whether v is a Fallback validator.
func IsFallback[T any](v Validator[T]) bool {
	_, ok := v.(Fallback[T])
	return ok
}

// fallbacks maps Validator[T] service types to Fallback[T] builders. Go cannot
// instantiate a generic type from a reflect.Type, so every generic entry point
// (For, Resolve, ResolveAll, ValidateAll, Declare) records its T here.
var fallbacks sync.Map

func declare[T any]() reflect.Type {
	svc := serviceTypeOf[T]()
	if _, ok := fallbacks.Load(svc); !ok {
		fallbacks.LoadOrStore(svc, func() any { return Fallback[T]{} })
	}
	return svc
}

// Declare makes Validator[T] resolvable through the fallback binding when it is
// requested with plain Container.Resolve rather than Resolve[T].
func Declare[T any]() {
	declare[T]()
}

// fallbackFactory is the conditional factory installed in single mode.
func fallbackFactory(svcType reflect.Type) (func() any, bool) {
	build, ok := fallbacks.Load(svcType)
	if !ok {
		return nil, false
	}
	return build.(func() any), true
}
