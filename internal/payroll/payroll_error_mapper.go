package payroll

import (
	"errors"
	"net/http"

	payrollerrors "go-ems/internal/payroll/errors"
	"go-ems/internal/shared/apperror"

	"go.mongodb.org/mongo-driver/mongo"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return payrollerrors.ErrEmployeeNotFound
	}

	// Compound unique index (employeeId, month): a racing duplicate insert
	// lands here instead of slipping past the pre-check.
	if mongo.IsDuplicateKeyError(err) {
		return payrollerrors.ErrAlreadyProcessed
	}

	return apperror.Wrap(err,
		apperror.CodeServiceUnavailable,
		"Payroll storage operation failed",
		http.StatusServiceUnavailable,
	)
}
