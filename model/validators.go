package model

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/Ngone6325/gofac-validation/validation"
)

// Validators is the catalog of this package, found through any model type used
// as a marker.
var Validators = validation.NewCatalog("model",
	validation.For[Person](NewPersonValidator),
	validation.For[Person](NewPersonAuditValidator),
	validation.For[Address](NewAddressValidator),
)

func init() {
	validation.Publish(Validators)
}

// PersonValidator checks struct tags, that a person can be contacted and runs
// the registered Address validators on the nested address.
type PersonValidator struct {
	*validation.StructValidator[Person]
	addresses []validation.Validator[Address]
}

func NewPersonValidator(v *validator.Validate, addresses []validation.Validator[Address]) *PersonValidator {
	return &PersonValidator{
		StructValidator: validation.NewStructValidator[Person](v),
		addresses:       addresses,
	}
}

func (v *PersonValidator) Validate(p Person) *validation.Result {
	res, err := v.ValidateContext(context.Background(), p)
	if err != nil {
		return (&validation.Result{}).Add(&validation.Failure{Tag: "invalid", Message: err.Error(), Value: p})
	}
	return res
}

func (v *PersonValidator) ValidateContext(ctx context.Context, p Person) (*validation.Result, error) {
	res, err := v.StructValidator.ValidateContext(ctx, p)
	if err != nil {
		return nil, err
	}
	if p.Email == "" && p.Phone == "" {
		res.Add(&validation.Failure{
			Property: "Email",
			Tag:      "contact",
			Message:  "email or phone is required",
		})
	}
	if p.Address == nil {
		return res, nil
	}
	for _, av := range v.addresses {
		addr, err := av.ValidateContext(ctx, *p.Address)
		if err != nil {
			return nil, err
		}
		for _, f := range addr.Errors {
			nested := *f
			nested.Property = "Address." + f.Property
			res.Add(&nested)
		}
	}
	return res, nil
}

// AddressValidator checks the tags of Address.
type AddressValidator struct {
	*validation.StructValidator[Address]
}

func NewAddressValidator(v *validator.Validate) *AddressValidator {
	return &AddressValidator{StructValidator: validation.NewStructValidator[Address](v)}
}

// PersonAuditValidator is kept out of registration; it is run explicitly by
// audit jobs.
type PersonAuditValidator struct {
	validation.SkipRegistration
}

func NewPersonAuditValidator() *PersonAuditValidator { return &PersonAuditValidator{} }

func (v *PersonAuditValidator) Validate(p Person) *validation.Result {
	res, _ := v.ValidateContext(context.Background(), p)
	return res
}

func (v *PersonAuditValidator) ValidateContext(_ context.Context, p Person) (*validation.Result, error) {
	res := &validation.Result{}
	if p.Age > 0 && p.Age < 18 && p.Address == nil {
		res.Add(&validation.Failure{Property: "Address", Tag: "audit", Message: "minors need a registered address"})
	}
	return res, nil
}
