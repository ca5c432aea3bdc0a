package model

import "github.com/shopspring/decimal"

// Person holds naming details shared by people-like entities
type Person struct {
	FirstName *string `json:"firstName" msgpack:"firstName"`
	LastName  *string `json:"lastName" msgpack:"lastName"`
}

// Customer is customer model entity
type Customer struct {
	ID int `json:"id" msgpack:"id"`
	Person
	PhoneNumber          *string          `json:"phoneNumber" msgpack:"phoneNumber"`
	Email                *string          `json:"email" msgpack:"email"`
	TotalPurchasesAmount *decimal.Decimal `json:"totalPurchasesAmount" msgpack:"totalPurchasesAmount"`
	Addresses            []*Address       `json:"addresses" msgpack:"-"`
	Notes                []*Note          `json:"notes" msgpack:"-"`
}

// Kind returns KindCustomer
func (c *Customer) Kind() Kind {
	return KindCustomer
}

// EqualsByValue compares customers field by field including addresses and notes
func (c *Customer) EqualsByValue(other *Customer) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}

	return c.ID == other.ID &&
		equalStrings(c.FirstName, other.FirstName) &&
		equalStrings(c.LastName, other.LastName) &&
		equalStrings(c.PhoneNumber, other.PhoneNumber) &&
		equalStrings(c.Email, other.Email) &&
		equalAmounts(c.TotalPurchasesAmount, other.TotalPurchasesAmount) &&
		ListsEqualByValues(c.Addresses, other.Addresses) &&
		ListsEqualByValues(c.Notes, other.Notes)
}

func equalAmounts(a1, a2 *decimal.Decimal) bool {
	if a1 == nil || a2 == nil {
		return a1 == nil && a2 == nil
	}
	return a1.Equal(*a2)
}
