package validation

import (
	"context"

	"github.com/go-playground/validator/v10"
)

type testPerson struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"omitempty,email"`
	Age   int    `validate:"gte=0,lte=150"`
}

type testCar struct {
	Model string
}

type testOrder struct {
	ID string
}

type testPersonValidator struct {
	*StructValidator[testPerson]
}

func newTestPersonValidator() *testPersonValidator {
	return &testPersonValidator{StructValidator: NewStructValidator[testPerson](nil)}
}

// testPersonNameValidator rejects reserved names.
type testPersonNameValidator struct{}

func newTestPersonNameValidator() *testPersonNameValidator { return &testPersonNameValidator{} }

func (v *testPersonNameValidator) Validate(p testPerson) *Result {
	res, _ := v.ValidateContext(context.Background(), p)
	return res
}

func (v *testPersonNameValidator) ValidateContext(_ context.Context, p testPerson) (*Result, error) {
	res := &Result{}
	if p.Name == "admin" {
		res.Add(&Failure{Property: "Name", Tag: "reserved", Message: "is reserved"})
	}
	return res, nil
}

type skippedOrderValidator struct {
	SkipRegistration
}

func newSkippedOrderValidator() *skippedOrderValidator { return &skippedOrderValidator{} }

func (v *skippedOrderValidator) Validate(testOrder) *Result {
	return (&Result{}).Add(&Failure{Tag: "never", Message: "must not run"})
}

func (v *skippedOrderValidator) ValidateContext(_ context.Context, o testOrder) (*Result, error) {
	return v.Validate(o), nil
}

// embeds a skipped validator without being skipped itself
type orderValidator struct {
	skippedOrderValidator
}

func newOrderValidator() *orderValidator { return &orderValidator{} }

// testCarValidator receives the shared *validator.Validate from the container.
type testCarValidator struct {
	*StructValidator[testCar]
	shared *validator.Validate
}

func newTestCarValidator(v *validator.Validate) *testCarValidator {
	return &testCarValidator{StructValidator: NewStructValidator[testCar](v), shared: v}
}

var testCatalog = NewCatalog("fixtures",
	For[testPerson](newTestPersonValidator),
	For[testOrder](newSkippedOrderValidator),
)

func init() {
	Publish(testCatalog)
}
