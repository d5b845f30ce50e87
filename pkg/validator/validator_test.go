package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

func TestValidateOK(t *testing.T) {
	err := Validate(addItemRequest{ProductID: 1, Quantity: 2})
	assert.NoError(t, err)
}

func TestValidateReportsFields(t *testing.T) {
	err := Validate(addItemRequest{ProductID: 1, Quantity: -1})
	require.Error(t, err)

	valErr, ok := err.(*ValidationError)
	require.True(t, ok)
	fields := valErr.Fields()
	assert.Contains(t, fields, "Quantity")
	assert.Contains(t, err.Error(), "Quantity")
}

func TestDecodeAndValidate(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"product_id":3,"quantity":2}`))

	var req addItemRequest
	require.NoError(t, DecodeAndValidate(r, &req))
	assert.Equal(t, int64(3), req.ProductID)
	assert.Equal(t, 2, req.Quantity)
}

func TestDecodeAndValidateBadJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{`))

	var req addItemRequest
	assert.Error(t, DecodeAndValidate(r, &req))
}
