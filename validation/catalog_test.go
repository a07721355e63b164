package validation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFor verifies entries describe target, service and implementation types.
func TestFor(t *testing.T) {
	t.Parallel()

	e := For[testPerson](newTestPersonValidator)
	assert.Equal(t, reflect.TypeOf(testPerson{}), e.Target())
	assert.Equal(t, reflect.TypeOf((*Validator[testPerson])(nil)).Elem(), e.Service())
	assert.Equal(t, reflect.TypeOf(&testPersonValidator{}), e.Implementation())
	assert.False(t, e.Skipped())

	skipped := For[testOrder](newSkippedOrderValidator)
	assert.True(t, skipped.Skipped())

	broken := For[testCar]("nope")
	assert.Nil(t, broken.Implementation())
	assert.False(t, broken.Skipped())

	// the fallback for the target type becomes resolvable
	_, ok := fallbackFactory(e.Service())
	assert.True(t, ok)
}

// TestCatalog verifies entries keep declaration order and accessors return copies.
func TestCatalog(t *testing.T) {
	t.Parallel()

	c := NewCatalog("people", For[testPerson](newTestPersonValidator))
	require.Same(t, c, c.Add(For[testPerson](newTestPersonNameValidator)))
	assert.Equal(t, "people", c.Name())

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, reflect.TypeOf(&testPersonValidator{}), entries[0].Implementation())
	assert.Equal(t, reflect.TypeOf(&testPersonNameValidator{}), entries[1].Implementation())

	entries[0] = Entry{}
	assert.NotNil(t, c.Entries()[0].Implementation())

	assert.Equal(t, []string{reflect.TypeOf(testPerson{}).PkgPath()}, c.Packages())
	assert.Empty(t, NewCatalog("empty").Packages())
	assert.Empty(t, NewCatalog("broken", For[testCar](42)).Packages())
}

// TestPublish verifies publishing is idempotent and ignores nil or empty catalogs.
func TestPublish(t *testing.T) {
	t.Parallel()

	Publish(testCatalog, nil, NewCatalog("empty"))
	Publish(testCatalog)

	got := CatalogsOf(testPerson{})
	require.Len(t, got, 1)
	assert.Same(t, testCatalog, got[0])

	assert.Nil(t, CatalogsOf(nil))
	assert.Nil(t, CatalogsOf(42))
	assert.Nil(t, CatalogsOf(struct{}{}))
}

// TestPackageOfFunc verifies package paths are cut from runtime function names.
func TestPackageOfFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"github.com/acme/app/model.init.0":             "github.com/acme/app/model",
		"github.com/acme/app/model_test.TestX.func1":   "github.com/acme/app/model_test",
		"github.com/acme/app/model.(*Person).Validate": "github.com/acme/app/model",
		"main.main":                                    "main",
		"main":                                         "main",
	}
	for name, want := range tests {
		assert.Equal(t, want, packageOfFunc(name), name)
	}
}

// TestUniqueCatalogs verifies duplicates and nils are dropped in first-seen order.
func TestUniqueCatalogs(t *testing.T) {
	t.Parallel()

	a, b := NewCatalog("a"), NewCatalog("b")
	got := uniqueCatalogs([]*Catalog{b, nil, a, b, a})
	assert.Equal(t, []*Catalog{b, a}, got)
	assert.Empty(t, uniqueCatalogs(nil))
}

// TestIsSkipped verifies only direct embedding marks a type.
func TestIsSkipped(t *testing.T) {
	t.Parallel()

	type named struct {
		Skip SkipRegistration
	}
	type pointerEmbed struct {
		*SkipRegistration
	}

	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"nil", nil, false},
		{"direct", reflect.TypeOf(skippedOrderValidator{}), true},
		{"pointer to direct", reflect.TypeOf(&skippedOrderValidator{}), true},
		{"embeds skipped validator", reflect.TypeOf(&orderValidator{}), false},
		{"named field", reflect.TypeOf(named{}), false},
		{"pointer embed", reflect.TypeOf(pointerEmbed{}), false},
		{"not a struct", reflect.TypeOf(0), false},
		{"plain validator", reflect.TypeOf(&testPersonValidator{}), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isSkipped(tt.typ))
		})
	}
}
