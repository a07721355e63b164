package gofac

import (
	"fmt"
	"strings"
)

type LifetimeScope int

const (
	Transient LifetimeScope = iota // Transient: creates new instance on each retrieval
	Singleton                      // Singleton: globally unique, cached in root container
	Scoped                         // Scoped: unique within scope, isolated between different scopes
)

// String returns the lowercase name used in configuration and logs
func (s LifetimeScope) String() string {
	switch s {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	default:
		return fmt.Sprintf("LifetimeScope(%d)", int(s))
	}
}

// ParseLifetimeScope parses a lifetime name, case-insensitive
func ParseLifetimeScope(name string) (LifetimeScope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "transient":
		return Transient, nil
	case "singleton":
		return Singleton, nil
	case "scoped":
		return Scoped, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLifetime, name)
}

// RegistrationKind describes how a binding was added to the container
type RegistrationKind int

const (
	KindSingle      RegistrationKind = iota // one implementation per service type
	KindCollection                          // member of an ordered collection
	KindConditional                         // default binding evaluated at resolution time
)

func (k RegistrationKind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindCollection:
		return "collection"
	case KindConditional:
		return "conditional"
	default:
		return fmt.Sprintf("RegistrationKind(%d)", int(k))
	}
}
