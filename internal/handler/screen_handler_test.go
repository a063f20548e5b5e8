package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/nexushq/nexus-chat-api/internal/dto"
)

func TestChannelsScreenSnapshot(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/api/v1/screens/channels/2", "")
	require.Equal(t, http.StatusOK, status)

	var screen dto.ChannelsScreenResponse
	require.NoError(t, json.Unmarshal(env.Data, &screen))
	require.Equal(t, "ready", screen.Phase)
	require.Empty(t, screen.Error)
	require.Len(t, screen.Channels, 3)
	require.NotNil(t, screen.Thread)
	require.Equal(t, "ready", screen.Thread.Phase)
	require.Len(t, screen.Thread.Messages, 2)
}

func TestDirectScreenSnapshot(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/api/v1/screens/direct", "")
	require.Equal(t, http.StatusOK, status)

	var screen dto.DirectScreenResponse
	require.NoError(t, json.Unmarshal(env.Data, &screen))
	require.Equal(t, "ready", screen.Phase)
	require.Len(t, screen.Members, 6)
	// the default session user belongs to both seeded groups
	require.Len(t, screen.Groups, 2)
}

func TestSearchScreenBlankQueryStaysEmpty(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/api/v1/screens/search", "")
	require.Equal(t, http.StatusOK, status)

	var screen dto.SearchScreenResponse
	require.NoError(t, json.Unmarshal(env.Data, &screen))
	require.Equal(t, "ready", screen.Phase)
	require.Empty(t, screen.Query)
	require.Empty(t, screen.Results)
}

func TestSearchScreenWithQuery(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/api/v1/screens/search?q=deploying", "")
	require.Equal(t, http.StatusOK, status)

	var screen dto.SearchScreenResponse
	require.NoError(t, json.Unmarshal(env.Data, &screen))
	require.Equal(t, "deploying", screen.Query)
	require.Len(t, screen.Results, 1)
	require.Equal(t, 3, screen.Results[0].ID)
}

func TestProfileScreenUsesSessionHeader(t *testing.T) {
	app := newTestApp(t)

	req, err := http.NewRequest(fiber.MethodGet, "/api/v1/screens/profile", nil)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "3")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	var screen dto.ProfileScreenResponse
	require.NoError(t, json.Unmarshal(env.Data, &screen))
	require.Equal(t, "ready", screen.Phase)
	require.Equal(t, "Jordan Lee", screen.User.Name)
}

func TestInboxScreenListsEverything(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/api/v1/screens/inbox", "")
	require.Equal(t, http.StatusOK, status)

	var screen dto.ThreadScreenResponse
	require.NoError(t, json.Unmarshal(env.Data, &screen))
	require.Equal(t, "ready", screen.Phase)
	require.Len(t, screen.Messages, 4)
}
