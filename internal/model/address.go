package model

// AddressType specifies purpose of address
type AddressType int

const (
	// AddressTypeShipping is address goods are shipped to
	AddressTypeShipping AddressType = iota + 1
	// AddressTypeBilling is address invoices are sent to
	AddressTypeBilling
)

// IsKnown reports whether address type is one of recognized values
func (t AddressType) IsKnown() bool {
	return t == AddressTypeShipping || t == AddressTypeBilling
}

func (t AddressType) String() string {
	switch t {
	case AddressTypeShipping:
		return "Shipping"
	case AddressTypeBilling:
		return "Billing"
	default:
		return "Unknown"
	}
}

// Address is address model entity
type Address struct {
	ID           int         `json:"id"`
	CustomerID   int         `json:"customerId"`
	AddressLine  *string     `json:"addressLine"`
	AddressLine2 *string     `json:"addressLine2"`
	Type         AddressType `json:"type"`
	City         *string     `json:"city"`
	PostalCode   *string     `json:"postalCode"`
	State        *string     `json:"state"`
	Country      *string     `json:"country"`
}

// Kind returns KindAddress
func (a *Address) Kind() Kind {
	return KindAddress
}

// EqualsByValue compares addresses field by field
func (a *Address) EqualsByValue(other *Address) bool {
	if a == nil || other == nil {
		return a == nil && other == nil
	}

	return a.ID == other.ID &&
		a.CustomerID == other.CustomerID &&
		equalStrings(a.AddressLine, other.AddressLine) &&
		equalStrings(a.AddressLine2, other.AddressLine2) &&
		a.Type == other.Type &&
		equalStrings(a.City, other.City) &&
		equalStrings(a.PostalCode, other.PostalCode) &&
		equalStrings(a.State, other.State) &&
		equalStrings(a.Country, other.Country)
}
