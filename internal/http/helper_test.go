package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/config"
	"github.com/seodius/KappaRecruit/internal/entity"
	"github.com/seodius/KappaRecruit/internal/services"
	"github.com/seodius/KappaRecruit/internal/storage"
	"github.com/seodius/KappaRecruit/internal/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	ctx    *appcontext.Context
	engine *gin.Engine

	companyA entity.Company
	companyB entity.Company

	adminRole     entity.Role
	recruiterRole entity.Role
	candidateRole entity.Role

	adminA     entity.User
	recruiterA entity.User
	recruiterB entity.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, utils.InitJWT("test-secret", "HS256", time.Hour))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := &appcontext.Context{
		DB:     db,
		Logger: zap.NewNop(),
		Store:  store,
		Mailer: services.NoopMailer{},
	}

	env := &testEnv{
		ctx:    ctx,
		engine: NewHTTPService(ctx).Engine(),
	}
	env.seed(t)
	return env
}

func (e *testEnv) seed(t *testing.T) {
	t.Helper()

	e.companyA = entity.Company{Name: "Acme Robotics", Industry: "Manufacturing"}
	e.companyB = entity.Company{Name: "Globex", Industry: "Finance"}
	require.NoError(t, e.ctx.DB.Create(&e.companyA).Error)
	require.NoError(t, e.ctx.DB.Create(&e.companyB).Error)

	e.adminRole = entity.Role{Name: "Administrator", Permissions: []string{"*"}}
	e.recruiterRole = entity.Role{Name: "Recruiter", Permissions: []string{"jobs", "candidates"}}
	e.candidateRole = entity.Role{Name: "Candidate", Permissions: []string{"self"}}
	require.NoError(t, e.ctx.DB.Create(&e.adminRole).Error)
	require.NoError(t, e.ctx.DB.Create(&e.recruiterRole).Error)
	require.NoError(t, e.ctx.DB.Create(&e.candidateRole).Error)

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	e.adminA = entity.User{
		CompanyID:    e.companyA.ID,
		Email:        "admin@acme.test",
		PasswordHash: hash,
		FirstName:    "Ada",
		LastName:     "Admin",
		RoleID:       e.adminRole.ID,
	}
	e.recruiterA = entity.User{
		CompanyID:    e.companyA.ID,
		Email:        "recruiter@acme.test",
		PasswordHash: hash,
		FirstName:    "Rita",
		LastName:     "Recruiter",
		RoleID:       e.recruiterRole.ID,
	}
	e.recruiterB = entity.User{
		CompanyID:    e.companyB.ID,
		Email:        "recruiter@globex.test",
		PasswordHash: hash,
		FirstName:    "Bob",
		LastName:     "Recruiter",
		RoleID:       e.recruiterRole.ID,
	}
	require.NoError(t, e.ctx.DB.Create(&e.adminA).Error)
	require.NoError(t, e.ctx.DB.Create(&e.recruiterA).Error)
	require.NoError(t, e.ctx.DB.Create(&e.recruiterB).Error)
}

func (e *testEnv) token(t *testing.T, user entity.User) string {
	t.Helper()
	token, err := utils.GenerateJWT(user.ID, user.CompanyID, user.Email)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func (e *testEnv) createJob(t *testing.T, token string, companyID string, jobID string) map[string]any {
	t.Helper()
	recorder := e.request(t, http.MethodPost, "/api/v1/jobs", token, map[string]any{
		"company_id": companyID,
		"jobId":      jobID,
		"descriptions": []map[string]any{
			{"text": "Senior Go Engineer", "language": "en"},
		},
		"location":         map[string]any{"type": "remote"},
		"employmentType":   "full-time",
		"responsibilities": []string{"Build and maintain backend services"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	return decodeBody(t, recorder)
}

func (e *testEnv) createCandidate(t *testing.T, token, email string) map[string]any {
	t.Helper()
	recorder := e.request(t, http.MethodPost, "/api/v1/candidates", token, map[string]any{
		"email":      email,
		"first_name": "Casey",
		"last_name":  "Doe",
		"job_title":  "Software Engineer",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	return decodeBody(t, recorder)
}

func (e *testEnv) createApplication(t *testing.T, token, jobID, candidateID string) map[string]any {
	t.Helper()
	recorder := e.request(t, http.MethodPost, "/api/v1/applications", token, map[string]any{
		"job_id":       jobID,
		"candidate_id": candidateID,
		"source":       "referral",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	return decodeBody(t, recorder)
}
