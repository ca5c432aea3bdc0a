package validation

import "strings"

// Violation is a single failed rule for a field path, e.g. Addresses[0].AddressLine
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result holds violations in the order rules were evaluated
type Result struct {
	Violations []Violation `json:"errors"`
}

// IsValid reports whether there are no violations
func (r Result) IsValid() bool {
	return len(r.Violations) == 0
}

// Has reports whether field has at least one violation
func (r Result) Has(field string) bool {
	for _, v := range r.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Messages returns all messages reported for field
func (r Result) Messages(field string) []string {
	var msgs []string
	for _, v := range r.Violations {
		if v.Field == field {
			msgs = append(msgs, v.Message)
		}
	}
	return msgs
}

// Fields returns distinct field paths with violations preserving order
func (r Result) Fields() []string {
	var fields []string
	seen := make(map[string]struct{})
	for _, v := range r.Violations {
		if _, ok := seen[v.Field]; ok {
			continue
		}
		seen[v.Field] = struct{}{}
		fields = append(fields, v.Field)
	}
	return fields
}

func (r Result) String() string {
	msgs := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "\n")
}

func (r *Result) add(field, msg string) {
	r.Violations = append(r.Violations, Violation{Field: field, Message: msg})
}
