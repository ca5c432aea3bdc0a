package service

import (
	"context"

	"github.com/umalmyha/customerlib/internal/model"
)

// inlineTransactor runs function without real transaction, used with repository mocks
type inlineTransactor struct {
	calls int
}

func (t *inlineTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	t.calls++
	return txFunc(ctx)
}

func strPtr(s string) *string {
	return &s
}

func validAddress() *model.Address {
	return &model.Address{
		AddressLine: strPtr("1 Main St"),
		Type:        model.AddressTypeShipping,
		City:        strPtr("Springfield"),
		PostalCode:  strPtr("00000"),
		State:       strPtr("IL"),
		Country:     strPtr("United States"),
	}
}

func validNote() *model.Note {
	return &model.Note{Content: strPtr("hello")}
}

func validCustomer() *model.Customer {
	return &model.Customer{
		Person: model.Person{
			FirstName: strPtr("John"),
			LastName:  strPtr("Doe"),
		},
		PhoneNumber: strPtr("+15551234567"),
		Email:       strPtr("john.doe@somemail.com"),
		Addresses:   []*model.Address{validAddress()},
		Notes:       []*model.Note{validNote()},
	}
}
