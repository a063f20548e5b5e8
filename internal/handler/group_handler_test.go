package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/nexushq/nexus-chat-api/internal/dto"
)

func TestGroupsListFilteredByMember(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/api/v1/groups?member=5", "")
	require.Equal(t, http.StatusOK, status)

	var groups []dto.GroupResponse
	require.NoError(t, json.Unmarshal(env.Data, &groups))
	require.Len(t, groups, 1)
	require.Equal(t, "Design Team", groups[0].Name)
}

func TestGroupsCreateUsesCounterIDs(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodPost, "/api/v1/groups",
		`{"name":"Launch Crew","members":[1,3,4]}`)
	require.Equal(t, http.StatusCreated, status)

	var created dto.GroupResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Equal(t, 3, created.ID)
	// a zero created_by falls back to the session user
	require.Equal(t, 1, created.CreatedBy)

	// deleting a group never frees its identifier
	status, _ = doJSON(t, app, fiber.MethodDelete, "/api/v1/groups/3", "")
	require.Equal(t, http.StatusOK, status)

	status, env = doJSON(t, app, fiber.MethodPost, "/api/v1/groups",
		`{"name":"Launch Crew 2","members":[1,3,4]}`)
	require.Equal(t, http.StatusCreated, status)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Equal(t, 4, created.ID)
}

func TestGroupsMembershipRoundTrip(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodPut, "/api/v1/groups/1/members/4", "")
	require.Equal(t, http.StatusOK, status)

	var updated dto.GroupResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Contains(t, updated.Members, 4)

	status, env = doJSON(t, app, fiber.MethodDelete, "/api/v1/groups/1/members/4", "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.NotContains(t, updated.Members, 4)
}

func TestGroupsGetNotFound(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/api/v1/groups/99", "")
	require.Equal(t, http.StatusNotFound, status)
	require.False(t, env.Success)
}
