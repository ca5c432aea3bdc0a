package validation

const (
	firstNameBlank     = "First name cannot be empty or whitespace."
	firstNameMaxLength = "First name: max %d characters."

	lastNameRequired  = "Last name is required."
	lastNameBlank     = "Last name cannot be empty or whitespace."
	lastNameMaxLength = "Last name: max %d characters."

	phoneNumberBlank  = "Phone number cannot be empty or whitespace."
	phoneNumberFormat = "Phone number: must be in E.164 format."

	emailBlank  = "Email cannot be empty or whitespace."
	emailFormat = "Invalid email."

	addressesMinCount = "At least one address is required."
	addressRequired   = "Address cannot be null."
	notesMinCount     = "At least one note is required."
	noteRequired      = "Note cannot be null."
)

const (
	addressLineRequired  = "Address line is required."
	addressLineBlank     = "Address line cannot be empty or whitespace."
	addressLineMaxLength = "Address line: max %d characters."

	addressLine2Blank     = "Address line2 cannot be empty or whitespace."
	addressLine2MaxLength = "Address line2: max %d characters."

	addressTypeUnknown = "Unknown type."

	cityRequired  = "City is required."
	cityBlank     = "City cannot be empty or whitespace."
	cityMaxLength = "City: max %d characters."

	postalCodeRequired  = "Postal code is required."
	postalCodeBlank     = "Postal code cannot be empty or whitespace."
	postalCodeMaxLength = "Postal code: max %d characters."

	stateRequired  = "State is required."
	stateBlank     = "State cannot be empty or whitespace."
	stateMaxLength = "State: max %d characters."

	countryRequired    = "Country is required."
	countryBlank       = "Country cannot be empty or whitespace."
	countryAllowedList = "Country: allowed only %s."
)

const (
	noteContentRequired  = "Note is required."
	noteContentBlank     = "Note cannot be empty or whitespace."
	noteContentMaxLength = "Note: max %d characters."
)
