// Package model holds the sample domain types validated by cmd/validation-demo.
package model

// Person is a customer record.
type Person struct {
	Name    string   `validate:"required,min=2,max=64"`
	Email   string   `validate:"omitempty,email"`
	Phone   string   `validate:"omitempty,e164"`
	Age     int      `validate:"gte=0,lte=150"`
	Address *Address `validate:"-"`
}

// Address is a postal address.
type Address struct {
	Street     string `validate:"required"`
	City       string `validate:"required"`
	PostalCode string `validate:"required,min=3,max=10"`
	Country    string `validate:"required,oneof=NL DE FR US"`
}

// Car has no validator: in single mode it resolves to the fallback.
type Car struct {
	Model string
	Year  int
}
