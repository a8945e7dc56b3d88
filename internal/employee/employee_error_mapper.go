package employee

import (
	"errors"
	"net/http"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/apperror"

	"go.mongodb.org/mongo-driver/mongo"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return employeeerrors.ErrEmployeeNotFound
	}

	// The unique index on employeeId is the authority; a duplicate insert
	// surfaces here even when the pre-check raced.
	if mongo.IsDuplicateKeyError(err) {
		return employeeerrors.ErrEmployeeCodeTaken
	}

	return apperror.Wrap(err,
		apperror.CodeServiceUnavailable,
		"Employee storage operation failed",
		http.StatusServiceUnavailable,
	)
}
