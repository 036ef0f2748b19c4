package http

import (
	"net/http"
	"testing"

	"github.com/seodius/KappaRecruit/internal/entity"
	"github.com/seodius/KappaRecruit/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSelfServiceUser creates a candidate plus a user account linked to it.
func seedSelfServiceUser(t *testing.T, env *testEnv) (entity.User, entity.Candidate) {
	t.Helper()

	candidate := entity.Candidate{
		FirstName: "Sam",
		LastName:  "Seeker",
		Email:     "sam@example.com",
	}
	require.NoError(t, env.ctx.DB.Create(&candidate).Error)

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := entity.User{
		CompanyID:    env.companyA.ID,
		Email:        "sam.user@example.com",
		PasswordHash: hash,
		RoleID:       env.candidateRole.ID,
		CandidateID:  &candidate.ID,
	}
	require.NoError(t, env.ctx.DB.Create(&user).Error)
	return user, candidate
}

func TestMeRoutesRequireCandidateRole(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodGet, "/api/v1/me/profile", env.token(t, env.recruiterA), nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestGetAndUpdateMyProfile(t *testing.T) {
	env := newTestEnv(t)
	user, candidate := seedSelfServiceUser(t, env)
	token := env.token(t, user)

	recorder := env.request(t, http.MethodGet, "/api/v1/me/profile", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Equal(t, candidate.Email, decodeBody(t, recorder)["email"])

	recorder = env.request(t, http.MethodPut, "/api/v1/me/profile", token, map[string]any{
		"email":            candidate.Email,
		"first_name":       "Samuel",
		"last_name":        "Seeker",
		"linkedin_profile": "https://linkedin.com/in/samseeker",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Samuel", body["first_name"])
	assert.Equal(t, "https://linkedin.com/in/samseeker", body["linkedin_profile"])
}

func TestMeProfileWithoutLinkedCandidate(t *testing.T) {
	env := newTestEnv(t)

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	user := entity.User{
		CompanyID:    env.companyA.ID,
		Email:        "unlinked@example.com",
		PasswordHash: hash,
		RoleID:       env.candidateRole.ID,
	}
	require.NoError(t, env.ctx.DB.Create(&user).Error)

	recorder := env.request(t, http.MethodGet, "/api/v1/me/profile", env.token(t, user), nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Candidate profile not found", decodeBody(t, recorder)["error"])
}

func TestGetMyResumesAndInterviews(t *testing.T) {
	env := newTestEnv(t)
	user, candidate := seedSelfServiceUser(t, env)
	token := env.token(t, user)

	resume := entity.Resume{CandidateID: candidate.ID, FileLocation: "sam.pdf"}
	require.NoError(t, env.ctx.DB.Create(&resume).Error)

	recruiterToken := env.token(t, env.recruiterA)
	job := env.createJob(t, recruiterToken, env.companyA.ID.String(), "ENG-1")
	application := env.createApplication(t, recruiterToken, job["id"].(string), candidate.ID.String())
	env.createInterview(t, recruiterToken, application["id"].(string), env.recruiterA.ID.String())

	recorder := env.request(t, http.MethodGet, "/api/v1/me/resumes", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	resumes := decodeBody(t, recorder)["resumes"].([]any)
	assert.Len(t, resumes, 1)

	recorder = env.request(t, http.MethodGet, "/api/v1/me/interviews", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	interviews := decodeBody(t, recorder)["interviews"].([]any)
	assert.Len(t, interviews, 1)

	// Deleting the application takes its interviews out of the listing.
	recorder = env.request(t, http.MethodDelete, "/api/v1/applications/"+application["id"].(string), recruiterToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/v1/me/interviews", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decodeBody(t, recorder)["interviews"])
}
