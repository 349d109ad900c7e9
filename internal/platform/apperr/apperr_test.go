package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation("bad page")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("missing")))
	assert.Equal(t, http.StatusInternalServerError, Status(Internal("db", errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("plain")))
}

func TestFromUnwrapsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("product not found"))
	assert.Equal(t, http.StatusNotFound, Status(err))
	assert.Equal(t, "product not found", From(err).Message)
}

func TestInternalKeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal("failed to fetch products", cause)
	assert.Equal(t, "failed to fetch products", err.Message)
	assert.ErrorIs(t, err, cause)
}
