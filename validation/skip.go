package validation

import "reflect"

// SkipRegistration excludes a validator from scanning when embedded directly:
//
//	type PersonPartValidator struct {
//		validation.SkipRegistration
//		...
//	}
//
// Only the type's own fields are inspected, so embedding a skipped validator in
// another validator does not skip the outer one.
type SkipRegistration struct{}

var skipRegistrationType = reflect.TypeOf(SkipRegistration{})

func isSkipped(impl reflect.Type) bool {
	if impl == nil {
		return false
	}
	for impl.Kind() == reflect.Ptr {
		impl = impl.Elem()
	}
	if impl.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < impl.NumField(); i++ {
		f := impl.Field(i)
		if f.Anonymous && f.Type == skipRegistrationType {
			return true
		}
	}
	return false
}
