package validation

import (
	gofac "github.com/Ngone6325/gofac-validation"
	"github.com/rs/zerolog"
)

// RegistrationKind selects how validators are bound per target type.
type RegistrationKind int

const (
	// SingleValidator binds one validator per target type and falls back to
	// Fallback[T] for types without one. Compose rules inside that validator and
	// mark the parts with SkipRegistration.
	SingleValidator RegistrationKind = iota
	// ValidatorCollection binds every validator of a target type as an ordered collection.
	ValidatorCollection
)

func (k RegistrationKind) String() string {
	if k == ValidatorCollection {
		return "collection"
	}
	return "single"
}

// Configuration controls AddValidation. Setters return the receiver for chaining
// and the last call wins.
type Configuration struct {
	lifetime gofac.LifetimeScope
	catalogs []*Catalog
	kind     RegistrationKind
	logger   zerolog.Logger
}

// NewConfiguration returns the defaults: Singleton, no catalogs, SingleValidator.
func NewConfiguration() *Configuration {
	return &Configuration{
		lifetime: gofac.Singleton,
		kind:     SingleValidator,
		logger:   zerolog.Nop(),
	}
}

// Lifetime validators are registered with. Default is Singleton.
func (c *Configuration) Lifetime() gofac.LifetimeScope { return c.lifetime }

// Catalogs scanned by AddValidation, as configured (duplicates are dropped at registration).
func (c *Configuration) Catalogs() []*Catalog {
	out := make([]*Catalog, len(c.catalogs))
	copy(out, c.catalogs)
	return out
}

func (c *Configuration) RegistrationKind() RegistrationKind { return c.kind }

func (c *Configuration) AsSingleton() *Configuration { return c.WithLifetime(gofac.Singleton) }

func (c *Configuration) AsScoped() *Configuration { return c.WithLifetime(gofac.Scoped) }

func (c *Configuration) AsTransient() *Configuration { return c.WithLifetime(gofac.Transient) }

// WithLifetime sets the lifetime directly, e.g. from configuration.
func (c *Configuration) WithLifetime(scope gofac.LifetimeScope) *Configuration {
	c.lifetime = scope
	return c
}

// WithCatalogs replaces the catalogs to scan.
func (c *Configuration) WithCatalogs(catalogs ...*Catalog) *Configuration {
	c.catalogs = append([]*Catalog(nil), catalogs...)
	return c
}

// WithMarkerTypes replaces the catalogs to scan with the published catalogs
// owning the packages of the marker types. See CatalogsOf.
func (c *Configuration) WithMarkerTypes(markers ...any) *Configuration {
	var catalogs []*Catalog
	for _, m := range markers {
		catalogs = append(catalogs, CatalogsOf(m)...)
	}
	c.catalogs = catalogs
	return c
}

func (c *Configuration) RegisterAsSingleValidator() *Configuration {
	c.kind = SingleValidator
	return c
}

func (c *Configuration) RegisterAsValidatorCollection() *Configuration {
	c.kind = ValidatorCollection
	return c
}

// WithLogger sets the logger registration decisions are written to.
func (c *Configuration) WithLogger(logger zerolog.Logger) *Configuration {
	c.logger = logger
	return c
}
