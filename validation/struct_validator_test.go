package validation

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAddress struct {
	City string `validate:"required"`
}

type testCustomer struct {
	Name    string      `validate:"required,max=5"`
	Tags    []string    `validate:"min=1,dive,oneof=a b"`
	Address testAddress
}

// TestStructValidator_Valid verifies a valid instance produces an empty result.
func TestStructValidator_Valid(t *testing.T) {
	t.Parallel()

	v := NewStructValidator[testPerson](nil)
	res := v.Validate(testPerson{Name: "Jo", Email: "jo@example.com", Age: 30})
	assert.True(t, res.IsValid())
}

// TestStructValidator_Failures verifies failures carry property, tag and message.
func TestStructValidator_Failures(t *testing.T) {
	t.Parallel()

	v := NewStructValidator[testPerson](validator.New())
	res, err := v.ValidateContext(context.Background(), testPerson{Name: "J", Email: "nope", Age: 151})
	require.NoError(t, err)
	require.Len(t, res.Errors, 3)

	byProp := map[string]*Failure{}
	for _, f := range res.Errors {
		byProp[f.Property] = f
	}

	require.Contains(t, byProp, "Name")
	assert.Equal(t, "min", byProp["Name"].Tag)
	assert.Equal(t, "2", byProp["Name"].Param)
	assert.Equal(t, "must be at least 2 characters", byProp["Name"].Message)
	assert.Equal(t, "J", byProp["Name"].Value)

	require.Contains(t, byProp, "Email")
	assert.Equal(t, "must be a valid email address", byProp["Email"].Message)

	require.Contains(t, byProp, "Age")
	assert.Equal(t, "must be less than or equal to 150", byProp["Age"].Message)
}

// TestStructValidator_NestedPaths verifies nested and slice properties.
func TestStructValidator_NestedPaths(t *testing.T) {
	t.Parallel()

	v := NewStructValidator[*testCustomer](nil)
	res := v.Validate(&testCustomer{Name: "toolong", Tags: []string{"a", "z"}})
	require.False(t, res.IsValid())

	messages := map[string]string{}
	for _, f := range res.Errors {
		messages[f.Property] = f.Message
	}
	assert.Equal(t, "must not exceed 5 characters", messages["Name"])
	assert.Equal(t, "must be one of: a b", messages["Tags[1]"])
	assert.Equal(t, "is required", messages["Address.City"])
}

// TestStructValidator_Nil verifies a nil instance is reported as required.
func TestStructValidator_Nil(t *testing.T) {
	t.Parallel()

	v := NewStructValidator[*testPerson](nil)
	res := v.Validate(nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "required", res.Errors[0].Tag)
	assert.Equal(t, "", res.Errors[0].Property)
}

// TestStructValidator_NotAStruct verifies non-struct targets are an error, not a failure.
func TestStructValidator_NotAStruct(t *testing.T) {
	t.Parallel()

	v := NewStructValidator[int](nil)
	_, err := v.ValidateContext(context.Background(), 3)
	var invalid *validator.InvalidValidationError
	assert.ErrorAs(t, err, &invalid)

	res := v.Validate(3)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "invalid", res.Errors[0].Tag)
}

// TestStructValidator_Canceled verifies a done context stops validation.
func TestStructValidator_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := NewStructValidator[testPerson](nil)
	res, err := v.ValidateContext(ctx, testPerson{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}
