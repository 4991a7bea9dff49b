package validation

import (
	"strings"
	"testing"

	"microblog/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestRequired(t *testing.T) {
	t.Run("omitted field", func(t *testing.T) {
		errs := models.FieldErrors{}
		_, ok := Required(errs, "username", nil)
		assert.False(t, ok)
		assert.Equal(t, []string{MsgRequired}, errs["username"])
	})

	t.Run("blank field", func(t *testing.T) {
		errs := models.FieldErrors{}
		_, ok := Required(errs, "username", strPtr(""))
		assert.False(t, ok)
		assert.Equal(t, []string{MsgBlank}, errs["username"])
	})

	t.Run("present field", func(t *testing.T) {
		errs := models.FieldErrors{}
		v, ok := Required(errs, "username", strPtr("alice"))
		assert.True(t, ok)
		assert.Equal(t, "alice", v)
		assert.Empty(t, errs)
	})
}

func TestMaxLength(t *testing.T) {
	errs := models.FieldErrors{}
	assert.True(t, MaxLength(errs, "title", strings.Repeat("x", 255), 255))
	assert.Empty(t, errs)

	assert.False(t, MaxLength(errs, "title", strings.Repeat("x", 256), 255))
	assert.Equal(t, []string{"Ensure this field has no more than 255 characters."}, errs["title"])
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple address", "alice@example.com", true},
		{"subdomain", "first.last@mail.example.org", true},
		{"plus tag", "alice+tag@example.com", true},
		{"no at sign", "not-an-email", false},
		{"missing local part", "@example.com", false},
		{"missing domain", "alice@", false},
		{"display name form", "Alice <alice@example.com>", false},
		{"domain without dot", "alice@localhost", false},
		{"spaces", "alice smith@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := models.FieldErrors{}
			ok := Email(errs, "email", tt.value)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, []string{MsgInvalidEmail}, errs["email"])
			}
		})
	}
}

func TestViolationsAccumulate(t *testing.T) {
	errs := models.FieldErrors{}
	Required(errs, "username", nil)
	Required(errs, "email", strPtr(""))
	MaxLength(errs, "first_name", strings.Repeat("x", 31), 30)

	assert.Len(t, errs, 3)
	assert.Equal(t, []string{MsgRequired}, errs["username"])
	assert.Equal(t, []string{MsgBlank}, errs["email"])
}
