package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)

	_, ok = IsValidDate("10-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "type", Message: "type is required"},
		{Field: "days", Message: "days must not be negative"},
	}

	assert.Equal(t, "type: type is required; days: days must not be negative", errs.Error())
	assert.Equal(t, map[string]string{
		"type": "type is required",
		"days": "days must not be negative",
	}, errs.ToMap())
}
