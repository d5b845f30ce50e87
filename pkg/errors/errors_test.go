package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NotFound("product", "42")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "NOT_FOUND", err.Code)
}

func TestStoreUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := StoreUnavailable(cause)

	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", InvalidInput("quantity must be positive"), http.StatusBadRequest},
		{"wrapped app error", fmt.Errorf("map item: %w", InvalidInput("bad")), http.StatusBadRequest},
		{"sentinel not found", fmt.Errorf("lookup: %w", ErrNotFound), http.StatusNotFound},
		{"sentinel store unavailable", fmt.Errorf("list: %w", ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"checkout failed", CheckoutFailed("provider rejected session"), http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
