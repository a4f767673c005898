package validator

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	require.NoError(t, v.RegisterValidation("imageref", validImageRef))
	require.NoError(t, v.RegisterValidation("contactinfo", validContactInfo))
	return v
}

func TestImageRef(t *testing.T) {
	v := newTestValidator(t)

	valid := []string{
		"",
		"https://cdn.example.com/pic.jpg",
		"http://example.com/a.png",
		"/uploads/2025/photo.webp",
	}
	for _, value := range valid {
		assert.NoError(t, v.Var(value, "imageref"), value)
	}

	invalid := []string{
		"ftp://example.com/pic.jpg",
		"not a url",
		"relative/path.jpg",
		"https://",
	}
	for _, value := range invalid {
		assert.Error(t, v.Var(value, "imageref"), value)
	}
}

func TestContactInfo(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Var("", "contactinfo"))
	assert.NoError(t, v.Var("call me after school", "contactinfo"))
	assert.NoError(t, v.Var(`{"phone":"08123","ig":"@kelas"}`, "contactinfo"))
	assert.NoError(t, v.Var(`["a","b"]`, "contactinfo"))

	assert.Error(t, v.Var(`{"phone": broken`, "contactinfo"))
	assert.Error(t, v.Var(strings.Repeat("x", 1001), "contactinfo"))
}

func TestFormatDetails(t *testing.T) {
	v := newTestValidator(t)

	type form struct {
		Name   string `json:"name" validate:"required,min=2"`
		Email  string `json:"email" validate:"omitempty,email"`
		Gender string `json:"gender" validate:"omitempty,oneof=male female"`
	}

	err := v.Struct(form{Email: "nope", Gender: "other"})
	require.Error(t, err)

	details := FormatDetails(err)
	require.Len(t, details, 3)

	byField := make(map[string]string)
	for _, d := range details {
		byField[d.Field] = d.Message
	}
	assert.Equal(t, "name is required", byField["name"])
	assert.Equal(t, "email must be a valid email address", byField["email"])
	assert.Equal(t, "gender must be one of: male female", byField["gender"])
}

// Field names in details must match what the client sent, not the Go field.
func TestFormatDetailsUsesJSONFieldNames(t *testing.T) {
	v := newTestValidator(t)

	type form struct {
		ImageURL string `json:"imageUrl" validate:"required,imageref"`
		AuthorID string `json:"authorId" validate:"required,uuid"`
	}

	err := v.Struct(form{ImageURL: "not-a-url", AuthorID: "nope"})
	require.Error(t, err)

	details := FormatDetails(err)
	require.Len(t, details, 2)
	assert.Equal(t, "imageUrl", details[0].Field)
	assert.Equal(t, "authorId", details[1].Field)
}

func TestFormatDetailsNonValidationError(t *testing.T) {
	details := FormatDetails(assert.AnError)
	require.Len(t, details, 1)
	assert.Equal(t, "body", details[0].Field)
}
