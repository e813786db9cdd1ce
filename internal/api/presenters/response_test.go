package presenters

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body io.Reader) Response {
	t.Helper()
	var res Response
	require.NoError(t, json.NewDecoder(body).Decode(&res))
	return res
}

func TestResponses(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.Map{"n": 1}, fiber.StatusCreated, "done")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusNotFound, "missing", errors.New("meal not found"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	res := decode(t, resp.Body)
	assert.True(t, res.Status)
	assert.Equal(t, "done", res.Message)
	assert.Equal(t, map[string]interface{}{"n": float64(1)}, res.Data)

	resp, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	res = decode(t, resp.Body)
	assert.False(t, res.Status)
	assert.Equal(t, "meal not found", res.Error)

	resp, err = app.Test(httptest.NewRequest("GET", "/nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, decode(t, resp.Body).Status)
}
