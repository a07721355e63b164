package gofac

import (
	"errors"
	"testing"
)

// TestLifetimeScopeConstants tests that the lifetime scope constants are defined correctly
func TestLifetimeScopeConstants(t *testing.T) {
	tests := []struct {
		name     string
		scope    LifetimeScope
		expected int
	}{
		{"Transient", Transient, 0},
		{"Singleton", Singleton, 1},
		{"Scoped", Scoped, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.scope) != tt.expected {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.expected, int(tt.scope))
			}
		})
	}
}

// TestLifetimeScopeString tests names round-trip through ParseLifetimeScope
func TestLifetimeScopeString(t *testing.T) {
	for _, scope := range []LifetimeScope{Transient, Singleton, Scoped} {
		parsed, err := ParseLifetimeScope(scope.String())
		if err != nil {
			t.Fatalf("ParseLifetimeScope(%q) failed: %v", scope.String(), err)
		}
		if parsed != scope {
			t.Errorf("Expected %v, got %v", scope, parsed)
		}
	}

	if got := LifetimeScope(42).String(); got != "LifetimeScope(42)" {
		t.Errorf("Unexpected name for unknown scope: %s", got)
	}
}

// TestParseLifetimeScope tests case handling and unknown names
func TestParseLifetimeScope(t *testing.T) {
	scope, err := ParseLifetimeScope("  Scoped ")
	if err != nil || scope != Scoped {
		t.Errorf("Expected Scoped, got %v (%v)", scope, err)
	}

	_, err = ParseLifetimeScope("forever")
	if !errors.Is(err, ErrUnknownLifetime) {
		t.Errorf("Expected ErrUnknownLifetime, got %v", err)
	}
}

// TestRegistrationKindString tests registration kind names
func TestRegistrationKindString(t *testing.T) {
	tests := map[RegistrationKind]string{
		KindSingle:          "single",
		KindCollection:      "collection",
		KindConditional:     "conditional",
		RegistrationKind(9): "RegistrationKind(9)",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	}
}
