package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCRUDRequiresAdministrator(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodGet, "/api/v1/roles", env.token(t, env.recruiterA), nil)
	require.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "Operation not permitted", decodeBody(t, recorder)["error"])
}

func TestRoleLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.adminA)

	recorder := env.request(t, http.MethodPost, "/api/v1/roles", token, map[string]any{
		"name":        "Hiring Manager",
		"permissions": []string{"jobs", "interviews"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	roleID := decodeBody(t, recorder)["id"].(string)

	recorder = env.request(t, http.MethodGet, "/api/v1/roles/"+roleID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Hiring Manager", decodeBody(t, recorder)["name"])

	recorder = env.request(t, http.MethodPut, "/api/v1/roles/"+roleID, token, map[string]any{
		"name":        "Hiring Lead",
		"permissions": []string{"jobs"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodDelete, "/api/v1/roles/"+roleID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/v1/roles/"+roleID, token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateDuplicateRole(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/api/v1/roles", env.token(t, env.adminA), map[string]any{
		"name": "Recruiter",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Role already exists", decodeBody(t, recorder)["error"])
}

func TestDeleteAssignedRole(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodDelete, "/api/v1/roles/"+env.recruiterRole.ID.String(), env.token(t, env.adminA), nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Role is assigned to users and cannot be deleted", decodeBody(t, recorder)["error"])
}
