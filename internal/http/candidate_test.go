package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCandidateDeduplicatesByEmail(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.recruiterA)

	first := env.createCandidate(t, token, "casey@example.com")
	second := env.createCandidate(t, token, "casey@example.com")

	assert.Equal(t, first["id"], second["id"])

	var count int64
	env.ctx.DB.Table("candidates").Where("email = ?", "casey@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateCandidateDedupeIsGlobal(t *testing.T) {
	env := newTestEnv(t)

	// Email dedupe spans companies: posting a known email returns the
	// existing record no matter which tenant created it.
	first := env.createCandidate(t, env.token(t, env.recruiterA), "global@example.com")
	second := env.createCandidate(t, env.token(t, env.recruiterB), "global@example.com")

	assert.Equal(t, first["id"], second["id"])
}

func TestGetCandidateCreatedByCompanyUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.recruiterA)

	created := env.createCandidate(t, token, "visible@example.com")
	candidateID := created["id"].(string)

	recorder := env.request(t, http.MethodGet, "/api/v1/candidates/"+candidateID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "visible@example.com", decodeBody(t, recorder)["email"])
}

func TestGetCandidateCrossTenant(t *testing.T) {
	env := newTestEnv(t)

	created := env.createCandidate(t, env.token(t, env.recruiterA), "hidden@example.com")
	candidateID := created["id"].(string)

	recorder := env.request(t, http.MethodGet, "/api/v1/candidates/"+candidateID, env.token(t, env.recruiterB), nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Candidate not found", decodeBody(t, recorder)["error"])
}

func TestCandidateVisibleThroughApplication(t *testing.T) {
	env := newTestEnv(t)
	tokenA := env.token(t, env.recruiterA)
	tokenB := env.token(t, env.recruiterB)

	// Candidate created by company A, but applied to a company B job.
	created := env.createCandidate(t, tokenA, "shared@example.com")
	candidateID := created["id"].(string)

	job := env.createJob(t, tokenB, env.companyB.ID.String(), "FIN-1")
	env.createApplication(t, tokenB, job["id"].(string), candidateID)

	recorder := env.request(t, http.MethodGet, "/api/v1/candidates/"+candidateID, tokenB, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetCandidatesListScoped(t *testing.T) {
	env := newTestEnv(t)
	tokenA := env.token(t, env.recruiterA)
	tokenB := env.token(t, env.recruiterB)

	candidate := env.createCandidate(t, tokenA, "applied@example.com")
	job := env.createJob(t, tokenA, env.companyA.ID.String(), "ENG-1")
	env.createApplication(t, tokenA, job["id"].(string), candidate["id"].(string))

	recorder := env.request(t, http.MethodGet, "/api/v1/candidates", tokenA, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	candidates := decodeBody(t, recorder)["candidates"].([]any)
	require.Len(t, candidates, 1)

	recorder = env.request(t, http.MethodGet, "/api/v1/candidates", tokenB, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decodeBody(t, recorder)["candidates"])
}

func TestCandidatesHiddenAfterJobDeleted(t *testing.T) {
	env := newTestEnv(t)
	tokenB := env.token(t, env.recruiterB)

	// Candidate created by company A, visible to B only through the
	// application to B's job.
	candidate := env.createCandidate(t, env.token(t, env.recruiterA), "transient@example.com")
	job := env.createJob(t, tokenB, env.companyB.ID.String(), "FIN-9")
	env.createApplication(t, tokenB, job["id"].(string), candidate["id"].(string))

	recorder := env.request(t, http.MethodDelete, "/api/v1/jobs/"+job["id"].(string), tokenB, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/v1/candidates", tokenB, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decodeBody(t, recorder)["candidates"])

	recorder = env.request(t, http.MethodGet, "/api/v1/candidates/"+candidate["id"].(string), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateCandidate(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, env.recruiterA)

	created := env.createCandidate(t, token, "update@example.com")
	candidateID := created["id"].(string)

	recorder := env.request(t, http.MethodPut, "/api/v1/candidates/"+candidateID, token, map[string]any{
		"email":      "update@example.com",
		"first_name": "Updated",
		"last_name":  "Name",
		"job_title":  "Staff Engineer",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	body := decodeBody(t, recorder)
	assert.Equal(t, "Updated", body["first_name"])
	assert.Equal(t, "Staff Engineer", body["job_title"])
}

func TestDeleteCandidateInvalidID(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodDelete, "/api/v1/candidates/not-a-uuid", env.token(t, env.recruiterA), nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
