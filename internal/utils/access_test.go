package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type accessFixture struct {
	ctx      *appcontext.Context
	companyA entity.Company
	companyB entity.Company
	userA    entity.User
	role     entity.Role
}

func newAccessFixture(t *testing.T) *accessFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Company{},
		&entity.Role{},
		&entity.User{},
		&entity.Job{},
		&entity.Candidate{},
		&entity.Application{},
		&entity.Interview{},
	))

	f := &accessFixture{
		ctx: &appcontext.Context{DB: db, Logger: zap.NewNop()},
	}

	f.companyA = entity.Company{Name: "Acme"}
	f.companyB = entity.Company{Name: "Globex"}
	require.NoError(t, db.Create(&f.companyA).Error)
	require.NoError(t, db.Create(&f.companyB).Error)

	f.role = entity.Role{Name: "Recruiter"}
	require.NoError(t, db.Create(&f.role).Error)

	f.userA = entity.User{
		CompanyID:    f.companyA.ID,
		Email:        "user@acme.test",
		PasswordHash: "x",
		RoleID:       f.role.ID,
	}
	require.NoError(t, db.Create(&f.userA).Error)
	return f
}

func TestJobInCompany(t *testing.T) {
	f := newAccessFixture(t)

	job := entity.Job{CompanyID: f.companyA.ID}
	require.NoError(t, f.ctx.DB.Create(&job).Error)

	assert.True(t, JobInCompany(f.ctx, job.ID, f.companyA.ID))
	assert.False(t, JobInCompany(f.ctx, job.ID, f.companyB.ID))
	assert.False(t, JobInCompany(f.ctx, uuid.New(), f.companyA.ID))
}

func TestCandidateInCompanyViaCreator(t *testing.T) {
	f := newAccessFixture(t)

	candidate := entity.Candidate{Email: "c@example.com", CreatedByUserID: &f.userA.ID}
	require.NoError(t, f.ctx.DB.Create(&candidate).Error)

	assert.True(t, CandidateInCompany(f.ctx, candidate.ID, f.companyA.ID))
	assert.False(t, CandidateInCompany(f.ctx, candidate.ID, f.companyB.ID))
}

func TestCandidateInCompanyViaApplication(t *testing.T) {
	f := newAccessFixture(t)

	candidate := entity.Candidate{Email: "orphan@example.com"}
	require.NoError(t, f.ctx.DB.Create(&candidate).Error)

	// Not visible anywhere before applying.
	assert.False(t, CandidateInCompany(f.ctx, candidate.ID, f.companyB.ID))

	job := entity.Job{CompanyID: f.companyB.ID}
	require.NoError(t, f.ctx.DB.Create(&job).Error)
	application := entity.Application{JobID: job.ID, CandidateID: candidate.ID}
	require.NoError(t, f.ctx.DB.Create(&application).Error)

	assert.True(t, CandidateInCompany(f.ctx, candidate.ID, f.companyB.ID))
	assert.False(t, CandidateInCompany(f.ctx, candidate.ID, f.companyA.ID))

	// Soft-deleting the job withdraws the visibility it granted.
	require.NoError(t, f.ctx.DB.Delete(&job).Error)
	assert.False(t, CandidateInCompany(f.ctx, candidate.ID, f.companyB.ID))
}

func TestApplicationAndInterviewInCompany(t *testing.T) {
	f := newAccessFixture(t)

	job := entity.Job{CompanyID: f.companyA.ID}
	require.NoError(t, f.ctx.DB.Create(&job).Error)
	candidate := entity.Candidate{Email: "iv@example.com"}
	require.NoError(t, f.ctx.DB.Create(&candidate).Error)
	application := entity.Application{JobID: job.ID, CandidateID: candidate.ID}
	require.NoError(t, f.ctx.DB.Create(&application).Error)
	interview := entity.Interview{ApplicationID: application.ID, InterviewType: entity.InterviewTypePhone}
	require.NoError(t, f.ctx.DB.Create(&interview).Error)

	assert.True(t, ApplicationInCompany(f.ctx, application.ID, f.companyA.ID))
	assert.False(t, ApplicationInCompany(f.ctx, application.ID, f.companyB.ID))
	assert.True(t, InterviewInCompany(f.ctx, interview.ID, f.companyA.ID))
	assert.False(t, InterviewInCompany(f.ctx, interview.ID, f.companyB.ID))
}
