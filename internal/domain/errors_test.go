package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/progarden-crm/internal/domain"
)

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := fmt.Errorf("create customer: %w", domain.Required("customer_name"))

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "customer_name", ve.Field)
	assert.Equal(t, "customer_name: is required", ve.Error())
}

func TestValidationError_NoField(t *testing.T) {
	err := domain.Invalid("", "nothing to update")
	assert.Equal(t, "nothing to update", err.Error())
}
