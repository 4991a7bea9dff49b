package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"microblog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMapServiceError(t *testing.T) {
	fieldErrs := models.FieldErrors{}
	fieldErrs.Add("username", "This field is required.")

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"field errors", fieldErrs, fiber.StatusBadRequest},
		{"not found", models.NewNotFoundError("User", 1), fiber.StatusNotFound},
		{"validation", models.NewValidationError("Invalid request body"), fiber.StatusBadRequest},
		{"internal", models.NewInternalError(errors.New("db down")), fiber.StatusInternalServerError},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapServiceError(tt.err))
		})
	}
}

func TestParseID(t *testing.T) {
	app := fiber.New()
	s := &Server{}

	var parsed uint
	app.Get("/items/:id/", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id", "item ID")
		if err != nil {
			return nil
		}
		parsed = id
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name           string
		param          string
		expectedStatus int
		expectedID     uint
	}{
		{"valid", "5", http.StatusOK, 5},
		{"non-numeric", "abc", http.StatusBadRequest, 0},
		{"zero", "0", http.StatusBadRequest, 0},
		{"negative", "-3", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed = 0
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/"+tt.param+"/", nil))
			assert.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedID, parsed)
		})
	}
}
