package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/threadline-dev/threadline/internal/errors"
	"github.com/threadline-dev/threadline/internal/logger"
)

// WriteError is the single place where the service error taxonomy is
// translated to HTTP status codes. Anything outside the closed set is a
// storage/internal fault and surfaces as a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	var (
		invalidInput *internal_errors.InvalidInputError
		unauthorized *internal_errors.UnauthorizedError
		forbidden    *internal_errors.ForbiddenError
		notFound     *internal_errors.NotFoundError
	)
	switch {
	case errors.As(err, &invalidInput):
		http.Error(w, invalidInput.Error(), http.StatusBadRequest)
	case errors.As(err, &unauthorized):
		http.Error(w, unauthorized.Error(), http.StatusUnauthorized)
	case errors.As(err, &forbidden):
		http.Error(w, forbidden.Error(), http.StatusForbidden)
	case errors.As(err, &notFound):
		http.Error(w, notFound.Error(), http.StatusNotFound)
	default:
		logger.Log.Error("internal error", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// DecodeValidate decodes a JSON body and checks `validate` struct tags.
// The first failing field is reported back as an input error.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &internal_errors.InvalidInputError{Field: "body", Reason: "invalid json"}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fe := validationErrs[0]
			return &internal_errors.InvalidInputError{
				Field:  strings.ToLower(fe.Field()),
				Reason: fe.Tag() + " constraint failed",
			}
		}
		return &internal_errors.InvalidInputError{Field: "body", Reason: "validation failed"}
	}
	return nil
}
