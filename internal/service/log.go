package service

import (
	"errors"

	"github.com/sirupsen/logrus"
	errs "github.com/umalmyha/customerlib/internal/errors"
)

// logFailure logs infrastructure failures and returns err unchanged, business failures are left to the caller
func logFailure(err error, op string, fields logrus.Fields) error {
	if err == nil || isBusinessErr(err) {
		return err
	}
	logrus.WithFields(fields).WithField("operation", op).WithError(err).Error("operation failed")
	return err
}

func isBusinessErr(err error) bool {
	var invalidArgErr *errs.InvalidArgumentErr
	var validationErr *errs.ValidationErr
	var emailTakenErr *errs.EmailTakenErr
	var dataChangedErr *errs.DataChangedErr
	return errors.As(err, &invalidArgErr) ||
		errors.As(err, &validationErr) ||
		errors.As(err, &emailTakenErr) ||
		errors.As(err, &dataChangedErr)
}
