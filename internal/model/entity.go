package model

// Kind identifies concrete entity type
type Kind int

const (
	// KindUnknown is zero value of Kind
	KindUnknown Kind = iota
	// KindCustomer is Customer entity kind
	KindCustomer
	// KindAddress is Address entity kind
	KindAddress
	// KindNote is Note entity kind
	KindNote
)

// ParseKind converts kind name used on the wire to Kind
func ParseKind(s string) Kind {
	switch s {
	case "customer", "customers":
		return KindCustomer
	case "address", "addresses":
		return KindAddress
	case "note", "notes":
		return KindNote
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindCustomer:
		return "customer"
	case KindAddress:
		return "address"
	case KindNote:
		return "note"
	default:
		return "unknown"
	}
}

// Entity is implemented by every business record
type Entity interface {
	Kind() Kind
}

// ListsEqualByValues compares two lists element by element using value equality.
// Two nil lists are equal, nil and non-nil lists are never equal.
func ListsEqualByValues[T any, P interface {
	*T
	EqualsByValue(*T) bool
}](l1, l2 []P) bool {
	if l1 == nil || l2 == nil {
		return l1 == nil && l2 == nil
	}

	if len(l1) != len(l2) {
		return false
	}

	for i := range l1 {
		if l1[i] == nil {
			if l2[i] == nil {
				continue
			}
			return false
		}

		if !l1[i].EqualsByValue(l2[i]) {
			return false
		}
	}
	return true
}

func equalStrings(s1, s2 *string) bool {
	if s1 == nil || s2 == nil {
		return s1 == nil && s2 == nil
	}
	return *s1 == *s2
}
