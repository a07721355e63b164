package validation

import (
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Entry is one validator candidate: the constructor of an implementation of Validator[T].
type Entry struct {
	target  reflect.Type
	service reflect.Type
	impl    reflect.Type
	ctor    any
}

// For builds an entry for a Validator[T] constructor. The constructor may take
// parameters, they are resolved from the container like any other service.
// An invalid constructor is reported by the container when the entry is registered.
func For[T any](ctor any) Entry {
	e := Entry{
		target:  reflect.TypeOf((*T)(nil)).Elem(),
		service: declare[T](),
		ctor:    ctor,
	}
	if ct := reflect.TypeOf(ctor); ct != nil && ct.Kind() == reflect.Func && ct.NumOut() == 1 {
		e.impl = ct.Out(0)
	}
	return e
}

// Target is T.
func (e Entry) Target() reflect.Type { return e.target }

// Service is Validator[T].
func (e Entry) Service() reflect.Type { return e.service }

// Implementation is the constructor's return type, nil if the constructor is malformed.
func (e Entry) Implementation() reflect.Type { return e.impl }

// Skipped reports whether the implementation embeds SkipRegistration.
func (e Entry) Skipped() bool { return isSkipped(e.impl) }

// Catalog is an ordered set of entries scanned as a unit.
type Catalog struct {
	name    string
	entries []Entry
}

// NewCatalog creates a catalog.
func NewCatalog(name string, entries ...Entry) *Catalog {
	return (&Catalog{name: name}).Add(entries...)
}

// Add appends entries and returns c.
func (c *Catalog) Add(entries ...Entry) *Catalog {
	c.entries = append(c.entries, entries...)
	return c
}

func (c *Catalog) Name() string { return c.name }

// Entries returns a copy of the entries in declaration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Packages returns the distinct package paths of the implementations.
func (c *Catalog) Packages() []string {
	seen := make(map[string]bool)
	var pkgs []string
	for _, e := range c.entries {
		pkg := pkgPathOf(e.impl)
		if pkg == "" || seen[pkg] {
			continue
		}
		seen[pkg] = true
		pkgs = append(pkgs, pkg)
	}
	return pkgs
}

var published = struct {
	sync.RWMutex
	byPkg map[string][]*Catalog
}{byPkg: make(map[string][]*Catalog)}

// Publish indexes catalogs under the package that calls Publish and the packages
// of their implementations, so that marker types of either can find them.
// Publish after all entries are added, usually from init. Empty catalogs are
// not indexed.
func Publish(catalogs ...*Catalog) {
	caller := ""
	if pc, _, _, ok := runtime.Caller(1); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = packageOfFunc(fn.Name())
		}
	}

	published.Lock()
	defer published.Unlock()
	for _, c := range catalogs {
		if c == nil || len(c.entries) == 0 {
			continue
		}
		pkgs := c.Packages()
		if caller != "" {
			pkgs = append(pkgs, caller)
		}
		for _, pkg := range pkgs {
			if !containsCatalog(published.byPkg[pkg], c) {
				published.byPkg[pkg] = append(published.byPkg[pkg], c)
			}
		}
	}
}

// packageOfFunc extracts the package path from a runtime function name such as
// "example.com/app/model.init.0".
func packageOfFunc(name string) string {
	slash := strings.LastIndexByte(name, '/')
	if dot := strings.IndexByte(name[slash+1:], '.'); dot >= 0 {
		return name[:slash+1+dot]
	}
	return name
}

// CatalogsOf returns the published catalogs owning the package of marker.
// marker is a value of the type, or a reflect.Type.
func CatalogsOf(marker any) []*Catalog {
	pkg := pkgPathOf(markerType(marker))
	if pkg == "" {
		return nil
	}
	published.RLock()
	defer published.RUnlock()
	out := make([]*Catalog, len(published.byPkg[pkg]))
	copy(out, published.byPkg[pkg])
	return out
}

func markerType(marker any) reflect.Type {
	if t, ok := marker.(reflect.Type); ok {
		return t
	}
	return reflect.TypeOf(marker)
}

func pkgPathOf(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath()
}

func containsCatalog(list []*Catalog, c *Catalog) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}

// uniqueCatalogs drops nil and repeated catalogs, keeping first-seen order.
func uniqueCatalogs(catalogs []*Catalog) []*Catalog {
	seen := make(map[*Catalog]bool, len(catalogs))
	out := make([]*Catalog, 0, len(catalogs))
	for _, c := range catalogs {
		if c == nil || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
