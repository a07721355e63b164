package validation

import (
	gofac "github.com/Ngone6325/gofac-validation"
)

// Group tags every registration made by AddValidation.
const Group = "validation"

// ArgumentError reports a required argument that was nil.
type ArgumentError struct {
	Argument string
}

func (e *ArgumentError) Error() string {
	return "validation: argument " + e.Argument + " cannot be nil"
}

// AddValidation registers validators into c. configure may be nil, in which case
// nothing is scanned and, in single mode, every validator resolves to Fallback.
//
// Container errors, such as two validators for one type in single mode
// (gofac.ErrRegisterDuplicate), are returned unchanged and leave c as it was.
//
// The fallback covers every Validator[T] requested through Resolve, ResolveAll,
// ValidateAll or named in a catalog. A T that none of these has seen, requested
// with plain Container.Resolve or as a constructor parameter, needs
// Declare[T]() first, otherwise it is reported as gofac.ErrServiceNotRegistered.
func AddValidation(c *gofac.Container, configure func(*Configuration)) (*gofac.Container, error) {
	if c == nil {
		return nil, &ArgumentError{Argument: "container"}
	}
	cfg := NewConfiguration()
	if configure != nil {
		configure(cfg)
	}
	return setup(c, cfg)
}

// AddValidationFromCatalogs scans the given catalogs with default settings.
func AddValidationFromCatalogs(c *gofac.Container, catalogs ...*Catalog) (*gofac.Container, error) {
	return AddValidation(c, func(cfg *Configuration) { cfg.WithCatalogs(catalogs...) })
}

// AddValidationFromMarkers scans the catalogs owning the marker types with default settings.
func AddValidationFromMarkers(c *gofac.Container, markers ...any) (*gofac.Container, error) {
	return AddValidation(c, func(cfg *Configuration) { cfg.WithMarkerTypes(markers...) })
}

// AddValidationConfig registers validators using a prepared configuration; nil means defaults.
func AddValidationConfig(c *gofac.Container, cfg *Configuration) (*gofac.Container, error) {
	if c == nil {
		return nil, &ArgumentError{Argument: "container"}
	}
	if cfg == nil {
		cfg = NewConfiguration()
	}
	return setup(c, cfg)
}

func setup(c *gofac.Container, cfg *Configuration) (*gofac.Container, error) {
	log := cfg.logger.With().
		Str("lifetime", cfg.lifetime.String()).
		Str("mode", cfg.kind.String()).
		Logger()

	catalogs := uniqueCatalogs(cfg.catalogs)
	var (
		bindings []gofac.Binding
		origins  []*Catalog
		entries  []Entry
		skipped  int
	)
	for _, catalog := range catalogs {
		for _, e := range catalog.entries {
			if e.Skipped() {
				log.Debug().
					Str("catalog", catalog.name).
					Stringer("validator", e.impl).
					Msg("validator marked with SkipRegistration, not registered")
				skipped++
				continue
			}
			bindings = append(bindings, gofac.Binding{
				Ctor:    e.ctor,
				Service: e.service,
				Append:  cfg.kind == ValidatorCollection,
			})
			origins = append(origins, catalog)
			entries = append(entries, e)
		}
	}

	// all or nothing: a failed batch leaves c untouched
	if err := c.RegisterBatch(bindings, cfg.lifetime, gofac.WithGroup(Group)); err != nil {
		return nil, err
	}
	for i, e := range entries {
		log.Debug().
			Str("catalog", origins[i].name).
			Stringer("target", e.target).
			Stringer("validator", e.impl).
			Msg("validator registered")
	}
	registered := len(entries)

	if cfg.kind == SingleValidator {
		unhandled := func(pc gofac.PredicateContext) bool { return !pc.Handled }
		if err := c.RegisterConditional(unhandled, fallbackFactory, cfg.lifetime, gofac.WithGroup(Group)); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int("catalogs", len(catalogs)).
		Int("registered", registered).
		Int("skipped", skipped).
		Msg("validators registered")
	return c, nil
}
