package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/db"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/extraction"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/llm"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/tailoring"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&ErrValidation{Field: "user_id", Message: "required"}, http.StatusBadRequest},
		{&db.NotFoundError{Kind: "resume", ID: uuid.New()}, http.StatusNotFound},
		{&extraction.UnsupportedFileError{Filename: "x.odt"}, http.StatusUnprocessableEntity},
		{&tailoring.StepError{}, http.StatusConflict},
		{&llm.ConfigError{Message: "missing API key"}, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
		// Wrapped errors still map to their underlying type.
		{fmt.Errorf("context: %w", &db.NotFoundError{Kind: "job posting", ID: uuid.New()}), http.StatusNotFound},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestErrValidationMessage(t *testing.T) {
	err := &ErrValidation{Field: "sections", Message: "at least one section must be selected"}
	assert.Contains(t, err.Error(), "sections")
	assert.Contains(t, err.Error(), "at least one section")
}
