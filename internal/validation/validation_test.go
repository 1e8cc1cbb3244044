package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"full_name" validate:"required"`
	Role  string `json:"role" validate:"required,role"`
	Start string `json:"start_date" validate:"omitempty,date"`
}

func TestStruct(t *testing.T) {
	v := New()

	require.NoError(t, v.Struct(sample{Name: "Ali", Role: "trainer", Start: "2025-01-31"}))

	err := v.Struct(sample{Role: "pilot", Start: "31/01/2025"})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "full_name is required", verr.Fields["full_name"])
	assert.Contains(t, verr.Fields["role"], "must be one of")
	assert.Contains(t, verr.Fields["start_date"], "YYYY-MM-DD")
	assert.Contains(t, err.Error(), "full_name is required")
}
