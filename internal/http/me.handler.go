package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
	"github.com/seodius/KappaRecruit/internal/utils"
	"go.uber.org/zap"
)

// candidateForUser resolves the candidate record linked to the
// authenticated self-service user.
func candidateForUser(c *gin.Context) (uuid.UUID, bool) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	if user.CandidateID == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate profile not found"})
		return uuid.Nil, false
	}
	return *user.CandidateID, true
}

func GetMyProfile(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		candidateID, ok := candidateForUser(c)
		if !ok {
			return
		}

		var candidate entity.Candidate
		if err := ctx.DB.First(&candidate, "id = ?", candidateID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate profile not found"})
			return
		}

		c.JSON(http.StatusOK, candidate)
	}
}

func UpdateMyProfile(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		candidateID, ok := candidateForUser(c)
		if !ok {
			return
		}

		var request candidateRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		var candidate entity.Candidate
		if err := ctx.DB.First(&candidate, "id = ?", candidateID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate profile not found"})
			return
		}

		candidate.FirstName = request.FirstName
		candidate.LastName = request.LastName
		candidate.Email = request.Email
		candidate.Phone = request.Phone
		candidate.Address = request.Address
		candidate.LinkedinProfile = request.LinkedinProfile
		candidate.JobTitle = request.JobTitle
		if err := ctx.DB.Save(&candidate).Error; err != nil {
			ctx.Logger.Error("Failed to update candidate profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update candidate profile"})
			return
		}

		c.JSON(http.StatusOK, candidate)
	}
}

func GetMyResumes(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		candidateID, ok := candidateForUser(c)
		if !ok {
			return
		}

		var resumes []entity.Resume
		if err := ctx.DB.Where("candidate_id = ?", candidateID).Find(&resumes).Error; err != nil {
			ctx.Logger.Error("Failed to get resumes", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get resumes"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"resumes": resumes})
	}
}

func GetMyInterviews(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		candidateID, ok := candidateForUser(c)
		if !ok {
			return
		}

		var interviews []entity.Interview
		if err := ctx.DB.
			Joins("JOIN applications ON applications.id = interviews.application_id AND applications.deleted_at IS NULL").
			Where("applications.candidate_id = ?", candidateID).
			Find(&interviews).Error; err != nil {
			ctx.Logger.Error("Failed to get interviews", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get interviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"interviews": interviews})
	}
}
