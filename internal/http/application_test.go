package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.recruiterA)

	job := env.createJob(t, token, env.companyA.ID.String(), "ENG-1")
	candidate := env.createCandidate(t, token, "applicant@example.com")
	application := env.createApplication(t, token, job["id"].(string), candidate["id"].(string))
	applicationID := application["id"].(string)

	assert.NotEmpty(t, application["applied_at"])
	assert.Equal(t, "referral", application["source"])

	recorder := env.request(t, http.MethodGet, "/api/v1/applications/"+applicationID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodDelete, "/api/v1/applications/"+applicationID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/v1/applications/"+applicationID, token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateApplicationForForeignJob(t *testing.T) {
	env := newTestEnv(t)

	job := env.createJob(t, env.token(t, env.recruiterB), env.companyB.ID.String(), "FIN-1")
	candidate := env.createCandidate(t, env.token(t, env.recruiterA), "someone@example.com")

	recorder := env.request(t, http.MethodPost, "/api/v1/applications", env.token(t, env.recruiterA), map[string]any{
		"job_id":       job["id"].(string),
		"candidate_id": candidate["id"].(string),
	})
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Job not found or access denied", decodeBody(t, recorder)["error"])
}

func TestGetApplicationCrossTenant(t *testing.T) {
	env := newTestEnv(t)
	tokenA := env.token(t, env.recruiterA)

	job := env.createJob(t, tokenA, env.companyA.ID.String(), "ENG-2")
	candidate := env.createCandidate(t, tokenA, "cross@example.com")
	application := env.createApplication(t, tokenA, job["id"].(string), candidate["id"].(string))

	recorder := env.request(t, http.MethodGet, "/api/v1/applications/"+application["id"].(string), env.token(t, env.recruiterB), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestApplicationStatusEvents(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.recruiterA)

	job := env.createJob(t, token, env.companyA.ID.String(), "ENG-3")
	candidate := env.createCandidate(t, token, "pipeline@example.com")
	application := env.createApplication(t, token, job["id"].(string), candidate["id"].(string))
	applicationID := application["id"].(string)

	recorder := env.request(t, http.MethodPost, "/api/v1/applications/"+applicationID+"/status", token, map[string]any{
		"status":           "screening",
		"reason":           "Resume looks strong",
		"next_action_date": "2026-09-15T10:00:00Z",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	event := decodeBody(t, recorder)
	assert.Equal(t, "screening", event["status"])
	assert.Equal(t, env.recruiterA.ID.String(), event["changed_by_user_id"])

	recorder = env.request(t, http.MethodPost, "/api/v1/applications/"+applicationID+"/status", token, map[string]any{
		"status": "bogus",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/v1/applications/"+applicationID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	history := decodeBody(t, recorder)["status_history"].([]any)
	assert.Len(t, history, 1)
}

func TestApplicationsHiddenAfterJobDeleted(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.recruiterA)

	job := env.createJob(t, token, env.companyA.ID.String(), "ENG-9")
	candidate := env.createCandidate(t, token, "gone@example.com")
	application := env.createApplication(t, token, job["id"].(string), candidate["id"].(string))

	recorder := env.request(t, http.MethodDelete, "/api/v1/jobs/"+job["id"].(string), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// The listing and the point lookup must agree about what exists.
	recorder = env.request(t, http.MethodGet, "/api/v1/applications", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decodeBody(t, recorder)["applications"])

	recorder = env.request(t, http.MethodGet, "/api/v1/applications/"+application["id"].(string), token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateApplicationRejectsForeignJob(t *testing.T) {
	env := newTestEnv(t)
	tokenA := env.token(t, env.recruiterA)

	jobA := env.createJob(t, tokenA, env.companyA.ID.String(), "ENG-4")
	jobB := env.createJob(t, env.token(t, env.recruiterB), env.companyB.ID.String(), "FIN-2")
	candidate := env.createCandidate(t, tokenA, "move@example.com")
	application := env.createApplication(t, tokenA, jobA["id"].(string), candidate["id"].(string))

	recorder := env.request(t, http.MethodPut, "/api/v1/applications/"+application["id"].(string), tokenA, map[string]any{
		"job_id":       jobB["id"].(string),
		"candidate_id": candidate["id"].(string),
		"source":       "referral",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
