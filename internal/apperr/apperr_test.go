package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{PermissionDenied("no"), http.StatusForbidden},
		{NotFound("item %d not found", 7), http.StatusNotFound},
		{DuplicateDocument("doc %q exists", "A-1"), http.StatusBadRequest},
		{InvalidQuantity("bad quantity"), http.StatusBadRequest},
		{InsufficientStock("available: %d", 3), http.StatusBadRequest},
		{ReferentialConflict("has sales"), http.StatusBadRequest},
		{Validation("missing field"), http.StatusBadRequest},
		{Unexpected("boom", errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("gone"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestErrorMessage(t *testing.T) {
	err := InsufficientStock("insufficient stock, available: %d", 5)
	assert.Equal(t, "insufficient stock, available: 5", err.Error())

	wrapped := Unexpected("query failed", errors.New("timeout"))
	assert.Contains(t, wrapped.Error(), "query failed")
	assert.Contains(t, wrapped.Error(), "timeout")
}
