package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func newCustomer() *Customer {
	amount := decimal.RequireFromString("10.50")
	return &Customer{
		ID:                   1,
		Person:               Person{LastName: strPtr("Doe")},
		TotalPurchasesAmount: &amount,
		Addresses:            []*Address{{ID: 1, CustomerID: 1, AddressLine: strPtr("1 Main St"), Type: AddressTypeBilling}},
		Notes:                []*Note{{ID: 2, CustomerID: 1, Content: strPtr("hello")}},
	}
}

func TestCustomerEqualsByValue(t *testing.T) {
	c := newCustomer()
	require.True(t, c.EqualsByValue(c), "equality must be reflexive")
	require.True(t, c.EqualsByValue(newCustomer()), "customers with same values must be equal")

	t.Log("amounts are compared numerically")
	{
		other := newCustomer()
		amount := decimal.RequireFromString("10.5")
		other.TotalPurchasesAmount = &amount
		require.True(t, c.EqualsByValue(other))
	}

	t.Log("nested lists are compared element by element")
	{
		other := newCustomer()
		other.Notes[0].Content = strPtr("bye")
		require.False(t, c.EqualsByValue(other))
	}

	t.Log("nil and empty lists differ")
	{
		other := newCustomer()
		other.Addresses = []*Address{}
		withNil := newCustomer()
		withNil.Addresses = nil
		require.False(t, other.EqualsByValue(withNil))
	}

	var nilCustomer *Customer
	require.True(t, nilCustomer.EqualsByValue(nil))
	require.False(t, nilCustomer.EqualsByValue(c))
}

func TestListsEqualByValues(t *testing.T) {
	x := &Note{ID: 1, Content: strPtr("x")}
	y := &Note{ID: 1, Content: strPtr("x")}
	z := &Note{ID: 1, Content: strPtr("z")}

	require.True(t, ListsEqualByValues[Note]([]*Note(nil), nil))
	require.False(t, ListsEqualByValues[Note](nil, []*Note{}))
	require.True(t, ListsEqualByValues([]*Note{x}, []*Note{y}))
	require.False(t, ListsEqualByValues([]*Note{x}, []*Note{z}))
	require.False(t, ListsEqualByValues([]*Note{x}, []*Note{x, y}))
	require.True(t, ListsEqualByValues([]*Note{nil}, []*Note{nil}))
	require.False(t, ListsEqualByValues([]*Note{nil}, []*Note{x}))
}

func TestParseKind(t *testing.T) {
	require.Equal(t, KindCustomer, ParseKind("customers"))
	require.Equal(t, KindAddress, ParseKind("address"))
	require.Equal(t, KindNote, ParseKind("notes"))
	require.Equal(t, KindUnknown, ParseKind("orders"))
	require.Equal(t, "note", (&Note{}).Kind().String())
}

func TestAddressType(t *testing.T) {
	require.True(t, AddressTypeShipping.IsKnown())
	require.True(t, AddressTypeBilling.IsKnown())
	require.False(t, AddressType(0).IsKnown())
	require.Equal(t, "Billing", AddressTypeBilling.String())
}
