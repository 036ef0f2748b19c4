package utils

import (
	"github.com/google/uuid"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
)

// JobInCompany reports whether a job belongs to the given company.
func JobInCompany(ctx *appcontext.Context, jobID uuid.UUID, companyID uuid.UUID) bool {
	var job entity.Job

	if err := ctx.DB.Where("id = ? AND company_id = ?", jobID, companyID).First(&job).Error; err != nil {
		return false
	}

	return true
}

// CandidateInCompany reports whether a candidate is visible to the given
// company: either they applied to one of the company's jobs, or a user of
// that company created their record.
func CandidateInCompany(ctx *appcontext.Context, candidateID uuid.UUID, companyID uuid.UUID) bool {
	var viaApplication int64
	ctx.DB.Model(&entity.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id AND jobs.deleted_at IS NULL").
		Where("applications.candidate_id = ? AND jobs.company_id = ?", candidateID, companyID).
		Count(&viaApplication)
	if viaApplication > 0 {
		return true
	}

	var candidate entity.Candidate
	if err := ctx.DB.First(&candidate, "id = ?", candidateID).Error; err != nil {
		return false
	}
	if candidate.CreatedByUserID == nil {
		return false
	}

	var creator entity.User
	if err := ctx.DB.Where("id = ? AND company_id = ?", candidate.CreatedByUserID, companyID).First(&creator).Error; err != nil {
		return false
	}

	return true
}

// ApplicationInCompany reports whether an application targets one of the
// company's jobs.
func ApplicationInCompany(ctx *appcontext.Context, applicationID uuid.UUID, companyID uuid.UUID) bool {
	var application entity.Application

	if err := ctx.DB.First(&application, "id = ?", applicationID).Error; err != nil {
		return false
	}

	return JobInCompany(ctx, application.JobID, companyID)
}

// InterviewInCompany walks interview -> application -> job -> company.
func InterviewInCompany(ctx *appcontext.Context, interviewID uuid.UUID, companyID uuid.UUID) bool {
	var interview entity.Interview

	if err := ctx.DB.First(&interview, "id = ?", interviewID).Error; err != nil {
		return false
	}

	return ApplicationInCompany(ctx, interview.ApplicationID, companyID)
}
