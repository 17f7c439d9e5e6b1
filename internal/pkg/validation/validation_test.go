package validation

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
}

func validForm() registerForm {
	return registerForm{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana@example.com",
		Password:  "correct horse battery",
	}
}

func TestStructValid(t *testing.T) {
	form := validForm()
	assert.Nil(t, Struct(&form))
}

func TestStructCollectsAllViolations(t *testing.T) {
	err := Struct(&registerForm{})
	require.NotNil(t, err)

	assert.Equal(t, fiber.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed", err.Message)
	require.Len(t, err.Details, 4)

	fields := make([]string, 0, len(err.Details))
	for _, d := range err.Details {
		fields = append(fields, d.Field)
	}
	// Fields are reported by JSON name, all at once
	assert.ElementsMatch(t, []string{"firstName", "lastName", "email", "password"}, fields)
}

func TestStructMaxLengthBoundary(t *testing.T) {
	form := validForm()

	form.FirstName = strings.Repeat("a", 255)
	assert.Nil(t, Struct(&form), "length 255 is inside the bound")

	form.FirstName = strings.Repeat("a", 256)
	err := Struct(&form)
	require.NotNil(t, err)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "firstName", err.Details[0].Field)
	assert.Equal(t, "firstName exceeds maximum length of 255 characters", err.Details[0].Message)
}

func TestStructMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*registerForm)
		field   string
		message string
	}{
		{
			name:    "required",
			mutate:  func(f *registerForm) { f.FirstName = "" },
			field:   "firstName",
			message: "firstName is required",
		},
		{
			name:    "email format",
			mutate:  func(f *registerForm) { f.Email = "not-an-email" },
			field:   "email",
			message: "email must be a valid email address",
		},
		{
			name:    "min length",
			mutate:  func(f *registerForm) { f.Password = "short" },
			field:   "password",
			message: "password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := Struct(&form)
			require.NotNil(t, err)
			require.Len(t, err.Details, 1)
			assert.Equal(t, tt.field, err.Details[0].Field)
			assert.Equal(t, tt.message, err.Details[0].Message)
		})
	}
}

func TestStructDetailCarriesValue(t *testing.T) {
	form := validForm()
	form.Email = "nope"

	err := Struct(&form)
	require.NotNil(t, err)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "nope", err.Details[0].Value)
}

func TestStructOneofMessage(t *testing.T) {
	type reviewForm struct {
		Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	}

	err := Struct(&reviewForm{Status: "MAYBE"})
	require.NotNil(t, err)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "status must be one of: APPROVED, REJECTED", err.Details[0].Message)
}
