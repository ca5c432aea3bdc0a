package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	errs "github.com/umalmyha/customerlib/internal/errors"
	"github.com/umalmyha/customerlib/internal/validation"
)

type internalError struct {
	Message string `json:"message"`
}

// HTTPErrorHandler converts error returned from handler to response with corresponding status code
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := errorResponse(err)
		if body == nil {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		entry := logrus.WithFields(logrus.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
			"status": code,
		})

		if code == http.StatusInternalServerError {
			entry.WithError(err).Error("error occurred on http request processing")
		} else {
			entry.Info(err.Error())
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.JSON(code, body)
		}

		if respErr != nil {
			entry.WithError(respErr).Error("failed to send error response")
		}
	}
}

// errorResponse maps err to status code and response body, nil body means echo default handling
func errorResponse(err error) (int, any) {
	var invalidArgErr *errs.InvalidArgumentErr
	var payloadErr *validation.PayloadError
	var validationErr *errs.ValidationErr
	var emailTakenErr *errs.EmailTakenErr
	var dataChangedErr *errs.DataChangedErr
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &invalidArgErr):
		return http.StatusBadRequest, invalidArgErr
	case errors.As(err, &payloadErr):
		return http.StatusBadRequest, &payloadErr.Result
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, validationErr
	case errors.As(err, &emailTakenErr):
		return http.StatusConflict, emailTakenErr
	case errors.As(err, &dataChangedErr):
		return http.StatusConflict, dataChangedErr
	case errors.As(err, &echoErr):
		return echoErr.Code, nil
	default:
		return http.StatusInternalServerError, &internalError{Message: "Internal server error"}
	}
}
