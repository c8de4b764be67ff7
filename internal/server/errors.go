package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/db"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/extraction"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/llm"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/tailoring"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		notFound    *db.NotFoundError
		unsupported *extraction.UnsupportedFileError
		step        *tailoring.StepError
		config      *llm.ConfigError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unsupported):
		return http.StatusUnprocessableEntity
	case errors.As(err, &step):
		return http.StatusConflict
	case errors.As(err, &config):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
