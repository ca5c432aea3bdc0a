package validation

import (
	"errors"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

// PayloadError is raised when request payload or parameters are malformed
type PayloadError struct {
	Result
}

func (e *PayloadError) Error() string {
	return e.Result.String()
}

// EchoValidator validates bound request structures using validate tags
type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// Echo builds echo compatible validator
func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// EnglishEcho builds echo compatible validator with english messages
func EnglishEcho() (*EchoValidator, error) {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}
	return Echo(validate, translator), nil
}

// Validate implements echo.Validator
func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{}
	for _, e := range ve {
		pldErr.add(e.Field(), e.Translate(v.translator))
	}
	return pldErr
}
