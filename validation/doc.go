// Package validation registers validators into a gofac container.
//
// Validators are grouped in catalogs, the unit a program scans, usually one per
// package:
//
//	var Validators = validation.NewCatalog("model",
//		validation.For[Person](NewPersonValidator),
//		validation.For[Address](NewAddressValidator),
//	)
//
//	func init() { validation.Publish(Validators) }
//
// AddValidation registers every catalog entry under the configured lifetime,
// either as one validator per target type (the default) or as an ordered
// collection per target type:
//
//	c := gofac.NewContainer()
//	_, err := validation.AddValidation(c, func(cfg *validation.Configuration) {
//		cfg.WithMarkerTypes(model.Person{}).AsScoped()
//	})
//
// In single mode any Validator[T] without an implementation resolves to
// Fallback[T], which always succeeds. Collection mode has no fallback: a type
// without validators resolves to an empty collection.
//
// A validator opts out of scanning by embedding SkipRegistration.
package validation
