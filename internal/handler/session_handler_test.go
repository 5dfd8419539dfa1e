package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"quizgrade/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_CreateSession(t *testing.T) {
	app := setupTestApp(stubAuth(), &mockPaperService{}, &mockDraftService{})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/sessions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "sess1", body.SessionID)
	assert.NotEmpty(t, body.Token)
}
