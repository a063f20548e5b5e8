package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func fetch(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(fiber.MethodGet, path, nil)
	require.NoError(t, err)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSendSuccessDefaultsMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return SendSuccess(c, "", map[string]int{"id": 1})
	})

	status, body := fetch(t, app, "/ok")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["success"])
	require.Equal(t, "success", body["message"])
	require.NotNil(t, body["data"])
}

func TestSendSuccessWithStatus(t *testing.T) {
	app := fiber.New()
	app.Get("/created", func(c *fiber.Ctx) error {
		return SendSuccessWithStatus(c, fiber.StatusCreated, "created", nil)
	})

	status, body := fetch(t, app, "/created")
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "created", body["message"])
}

func TestSendErrorOmitsData(t *testing.T) {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return SendError(c, fiber.StatusNotFound, "record not found")
	})

	status, body := fetch(t, app, "/fail")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, false, body["success"])
	require.Equal(t, "record not found", body["message"])
	require.NotContains(t, body, "data")
}
