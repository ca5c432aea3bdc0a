package errors

import (
	"encoding/json"
	"fmt"

	"github.com/umalmyha/customerlib/internal/validation"
)

// InvalidArgumentErr is raised when parameter violates basic precondition
type InvalidArgumentErr struct {
	param   string
	message string
}

func (e *InvalidArgumentErr) Error() string {
	return fmt.Sprintf("%s (parameter '%s')", e.message, e.param)
}

// Param returns name of offending parameter
func (e *InvalidArgumentErr) Param() string {
	return e.param
}

func (e *InvalidArgumentErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.param, Message: e.message})
}

// NewInvalidArgumentErr builds InvalidArgumentErr
func NewInvalidArgumentErr(param string, msg string) *InvalidArgumentErr {
	return &InvalidArgumentErr{
		param:   param,
		message: msg,
	}
}

// NotLessThan fails with InvalidArgumentErr if value is less than min
func NotLessThan(min int, value int, param string) error {
	if value < min {
		return NewInvalidArgumentErr(param, fmt.Sprintf("Cannot be less than %d.", min))
	}
	return nil
}

// ValidationErr carries validation result of rejected entity
type ValidationErr struct {
	result validation.Result
}

func (e *ValidationErr) Error() string {
	return e.result.String()
}

// Result returns violations that caused rejection
func (e *ValidationErr) Result() validation.Result {
	return e.result
}

func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&e.result)
}

// NewValidationErr builds ValidationErr
func NewValidationErr(res validation.Result) *ValidationErr {
	return &ValidationErr{result: res}
}

// EmailTakenErr is raised when email already belongs to another customer
type EmailTakenErr struct {
	email string
}

func (e *EmailTakenErr) Error() string {
	return fmt.Sprintf("email %s is already taken", e.email)
}

// Email returns conflicting email
func (e *EmailTakenErr) Email() string {
	return e.email
}

func (e *EmailTakenErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
		Email   string `json:"email"`
	}{Target: "Email", Message: e.Error(), Email: e.email})
}

// NewEmailTakenErr builds EmailTakenErr
func NewEmailTakenErr(email string) *EmailTakenErr {
	return &EmailTakenErr{email: email}
}

// DataChangedErr is raised when data was changed between caller's read and current request,
// callers are expected to restart from known-good state
type DataChangedErr struct {
	expected int
	actual   int
}

func (e *DataChangedErr) Error() string {
	return fmt.Sprintf("data changed while processing: expected %d total, got %d", e.expected, e.actual)
}

// Expected returns total caller relied on
func (e *DataChangedErr) Expected() int {
	return e.expected
}

// Actual returns current total
func (e *DataChangedErr) Actual() int {
	return e.actual
}

func (e *DataChangedErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message  string `json:"message"`
		Expected int    `json:"expected"`
		Actual   int    `json:"actual"`
		Restart  bool   `json:"restart"`
	}{Message: e.Error(), Expected: e.expected, Actual: e.actual, Restart: true})
}

// NewDataChangedErr builds DataChangedErr
func NewDataChangedErr(expected, actual int) *DataChangedErr {
	return &DataChangedErr{expected: expected, actual: actual}
}
