package validation

import (
	"regexp"

	"github.com/umalmyha/customerlib/internal/model"
)

// RuleSetOwn holds rules for customer's own fields, addresses and notes are excluded
const RuleSetOwn = "Own"

const (
	nameMaxLen        = 50
	addressLineMaxLen = 100
	cityMaxLen        = 50
	postalCodeMaxLen  = 6
	stateMaxLen       = 20
	noteContentMaxLen = 1000
)

var (
	phoneNumberE164 = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	emailShape      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// AllowedCountries lists countries address may belong to
var AllowedCountries = []string{"United States", "Canada"}

var (
	addressValidator  = NewAddressValidator()
	noteValidator     = NewNoteValidator()
	customerValidator = NewCustomerValidator()
)

// NewAddressValidator declares address rules
func NewAddressValidator() *Validator[*model.Address] {
	v := New[*model.Address]()

	Field(v, "AddressLine", func(a *model.Address) *string { return a.AddressLine }).
		Cascade(CascadeStop).
		Rules(
			Required[string](addressLineRequired),
			NotBlank(addressLineBlank),
			MaxLength(addressLineMaxLen, addressLineMaxLength),
		)

	Field(v, "AddressLine2", func(a *model.Address) *string { return a.AddressLine2 }).
		Cascade(CascadeStop).
		Rules(
			NotBlank(addressLine2Blank),
			MaxLength(addressLineMaxLen, addressLine2MaxLength),
		).
		When(func(a *model.Address) bool { return a.AddressLine2 != nil })

	Field(v, "Type", func(a *model.Address) model.AddressType { return a.Type }).
		Rules(Must(model.AddressType.IsKnown, addressTypeUnknown))

	Field(v, "City", func(a *model.Address) *string { return a.City }).
		Cascade(CascadeStop).
		Rules(
			Required[string](cityRequired),
			NotBlank(cityBlank),
			MaxLength(cityMaxLen, cityMaxLength),
		)

	Field(v, "PostalCode", func(a *model.Address) *string { return a.PostalCode }).
		Cascade(CascadeStop).
		Rules(
			Required[string](postalCodeRequired),
			NotBlank(postalCodeBlank),
			MaxLength(postalCodeMaxLen, postalCodeMaxLength),
		)

	Field(v, "State", func(a *model.Address) *string { return a.State }).
		Cascade(CascadeStop).
		Rules(
			Required[string](stateRequired),
			NotBlank(stateBlank),
			MaxLength(stateMaxLen, stateMaxLength),
		)

	Field(v, "Country", func(a *model.Address) *string { return a.Country }).
		Cascade(CascadeStop).
		Rules(
			Required[string](countryRequired),
			NotBlank(countryBlank),
			OneOf(AllowedCountries, countryAllowedList),
		)

	return v
}

// NewNoteValidator declares note rules
func NewNoteValidator() *Validator[*model.Note] {
	v := New[*model.Note]()

	Field(v, "Content", func(n *model.Note) *string { return n.Content }).
		Cascade(CascadeStop).
		Rules(
			Required[string](noteContentRequired),
			NotBlank(noteContentBlank),
			MaxLength(noteContentMaxLen, noteContentMaxLength),
		)

	return v
}

// NewCustomerValidator declares customer rules, own fields are grouped into RuleSetOwn
func NewCustomerValidator() *Validator[*model.Customer] {
	v := New[*model.Customer]()

	v.RuleSet(RuleSetOwn, func(v *Validator[*model.Customer]) {
		Field(v, "FirstName", func(c *model.Customer) *string { return c.FirstName }).
			Cascade(CascadeStop).
			Rules(
				NotBlank(firstNameBlank),
				MaxLength(nameMaxLen, firstNameMaxLength),
			).
			When(func(c *model.Customer) bool { return c.FirstName != nil })

		Field(v, "LastName", func(c *model.Customer) *string { return c.LastName }).
			Cascade(CascadeStop).
			Rules(
				Required[string](lastNameRequired),
				NotBlank(lastNameBlank),
				MaxLength(nameMaxLen, lastNameMaxLength),
			)

		Field(v, "PhoneNumber", func(c *model.Customer) *string { return c.PhoneNumber }).
			Cascade(CascadeStop).
			Rules(
				NotBlank(phoneNumberBlank),
				Matches(phoneNumberE164, phoneNumberFormat),
			).
			When(func(c *model.Customer) bool { return c.PhoneNumber != nil })

		Field(v, "Email", func(c *model.Customer) *string { return c.Email }).
			Cascade(CascadeStop).
			Rules(
				NotBlank(emailBlank),
				Matches(emailShape, emailFormat),
			).
			When(func(c *model.Customer) bool { return c.Email != nil })
	})

	addresses := Field(v, "Addresses", func(c *model.Customer) []*model.Address { return c.Addresses }).
		Rules(NotEmpty[*model.Address](addressesMinCount))
	ForEach(addresses, NewAddressValidator(), addressRequired)

	notes := Field(v, "Notes", func(c *model.Customer) []*model.Note { return c.Notes }).
		Cascade(CascadeStop).
		Rules(NotEmpty[*model.Note](notesMinCount))
	ForEach(notes, NewNoteValidator(), noteRequired)

	return v
}

// ValidateAddress validates every address rule
func ValidateAddress(a *model.Address) Result {
	return addressValidator.Validate(a, IncludeAllRuleSets())
}

// ValidateNote validates every note rule
func ValidateNote(n *model.Note) Result {
	return noteValidator.Validate(n, IncludeAllRuleSets())
}

// ValidateCustomer validates customer including addresses and notes
func ValidateCustomer(c *model.Customer) Result {
	return customerValidator.Validate(c, IncludeAllRuleSets())
}

// ValidateCustomerOwnFields validates customer without addresses and notes
func ValidateCustomerOwnFields(c *model.Customer) Result {
	return customerValidator.Validate(c, IncludeRuleSets(RuleSetOwn))
}

// ValidateProperty validates single field of entity, false is returned for unknown entity kind
func ValidateProperty(e model.Entity, field string) (Result, bool) {
	if e == nil {
		return Result{}, false
	}

	switch e.Kind() {
	case model.KindCustomer:
		if c, ok := e.(*model.Customer); ok && c != nil {
			return customerValidator.Validate(c, IncludeFields(field)), true
		}
	case model.KindAddress:
		if a, ok := e.(*model.Address); ok && a != nil {
			return addressValidator.Validate(a, IncludeFields(field)), true
		}
	case model.KindNote:
		if n, ok := e.(*model.Note); ok && n != nil {
			return noteValidator.Validate(n, IncludeFields(field)), true
		}
	}
	return Result{}, false
}
