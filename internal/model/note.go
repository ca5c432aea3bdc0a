package model

// Note is note model entity
type Note struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customerId"`
	Content    *string `json:"content"`
}

// Kind returns KindNote
func (n *Note) Kind() Kind {
	return KindNote
}

// EqualsByValue compares notes field by field
func (n *Note) EqualsByValue(other *Note) bool {
	if n == nil || other == nil {
		return n == nil && other == nil
	}

	return n.ID == other.ID &&
		n.CustomerID == other.CustomerID &&
		equalStrings(n.Content, other.Content)
}
