package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, app *fiber.App, path string) (int, SemanticResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out SemanticResponse
	require.NoError(t, json.Unmarshal(b, &out))
	return resp.StatusCode, out
}

func TestEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error { return Success(c, fiber.StatusOK, "", []int{1}) })
	app.Get("/bad", func(c fiber.Ctx) error { return Error(c, fiber.StatusBadRequest, "Job ID required", nil) })
	app.Get("/weird", func(c fiber.Ctx) error { return Error(c, 42, "", nil) })

	code, body := decode(t, app, "/ok")
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, body.Success)
	assert.Equal(t, MessageOK, body.Message)

	code, body = decode(t, app, "/bad")
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, body.Success)
	assert.Equal(t, "Job ID required", body.Message)

	code, body = decode(t, app, "/weird")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, MessageInternalServerError, body.Message)
}

func TestDefaultMessage(t *testing.T) {
	assert.Equal(t, MessageNotFound, DefaultMessage(fiber.StatusNotFound))
	assert.Equal(t, MessageError, DefaultMessage(418))
	assert.Equal(t, MessageInternalServerError, DefaultMessage(502))
}

func TestDefaultMessage_ServiceUnavailable(t *testing.T) {
	assert.Equal(t, MessageServiceUnavailable, DefaultMessage(fiber.StatusServiceUnavailable))
	assert.Equal(t, MessageInternalServerError, DefaultMessage(700))
}
