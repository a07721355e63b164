package validation

import (
	"context"
	"errors"

	gofac "github.com/Ngone6325/gofac-validation"
)

// Resolve returns the validator bound to T: the registered implementation in
// single mode, or Fallback[T] when T has none.
func Resolve[T any](r gofac.Resolver) (Validator[T], error) {
	declare[T]()
	return gofac.Get[Validator[T]](r)
}

// ResolveAll returns every validator bound to T, the single binding first and
// then the collection. It never includes Fallback and is empty, not nil, when
// nothing is bound.
func ResolveAll[T any](r gofac.Resolver) ([]Validator[T], error) {
	declare[T]()
	return gofac.GetAll[Validator[T]](r)
}

// ValidateAll runs every validator bound to T against instance and merges the
// results in order. Without any binding it consults Resolve, so in single mode
// the fallback accepts the instance.
func ValidateAll[T any](ctx context.Context, r gofac.Resolver, instance T) (*Result, error) {
	validators, err := ResolveAll[T](r)
	if err != nil {
		return nil, err
	}
	if len(validators) == 0 {
		v, err := Resolve[T](r)
		switch {
		case errors.Is(err, gofac.ErrServiceNotRegistered):
			return &Result{}, nil
		case err != nil:
			return nil, err
		}
		validators = append(validators, v)
	}

	result := &Result{}
	for _, v := range validators {
		res, err := v.ValidateContext(ctx, instance)
		if err != nil {
			return nil, err
		}
		result.Merge(res)
	}
	return result, nil
}
