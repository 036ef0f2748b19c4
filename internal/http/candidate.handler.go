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

type candidateRequest struct {
	Email           string `json:"email" binding:"required,email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	LinkedinProfile string `json:"linkedin_profile"`
	JobTitle        string `json:"job_title"`
}

// CreateCandidate creates a candidate or returns the existing one with the
// same email, so repeat applications do not produce duplicate profiles.
func CreateCandidate(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request candidateRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		user, err := utils.GetUserFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var existing entity.Candidate
		if err := ctx.DB.Where("email = ?", request.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}

		candidate := entity.Candidate{
			Email:           request.Email,
			FirstName:       request.FirstName,
			LastName:        request.LastName,
			Phone:           request.Phone,
			Address:         request.Address,
			LinkedinProfile: request.LinkedinProfile,
			JobTitle:        request.JobTitle,
			CreatedByUserID: &user.ID,
		}
		if err := ctx.DB.Create(&candidate).Error; err != nil {
			ctx.Logger.Error("Failed to create candidate", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create candidate"})
			return
		}

		if err := utils.IndexDocument(ctx, utils.CandidateToDocument(&candidate, user.CompanyID.String())); err != nil {
			ctx.Logger.Warn("Failed to index candidate", zap.Error(err))
		}

		c.JSON(http.StatusOK, candidate)
	}
}

// GetCandidates lists candidates that applied to any of the company's jobs.
func GetCandidates(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// Same visibility rule as CandidateInCompany: applied to one of the
		// company's jobs, or created by one of its users.
		var candidates []entity.Candidate
		if err := ctx.DB.Distinct("candidates.*").
			Joins("LEFT JOIN applications ON applications.candidate_id = candidates.id AND applications.deleted_at IS NULL").
			Joins("LEFT JOIN jobs ON jobs.id = applications.job_id AND jobs.deleted_at IS NULL").
			Joins("LEFT JOIN users ON users.id = candidates.created_by_user_id AND users.deleted_at IS NULL").
			Where("jobs.company_id = ? OR users.company_id = ?", companyID, companyID).
			Find(&candidates).Error; err != nil {
			ctx.Logger.Error("Failed to get candidates", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get candidates"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"candidates": candidates})
	}
}

func GetCandidate(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		candidateID, err := uuid.Parse(c.Param("candidateID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID"})
			return
		}

		if !utils.CandidateInCompany(ctx, candidateID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}

		var candidate entity.Candidate
		if err := ctx.DB.First(&candidate, "id = ?", candidateID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}

		c.JSON(http.StatusOK, candidate)
	}
}

func UpdateCandidate(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request candidateRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		candidateID, err := uuid.Parse(c.Param("candidateID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID"})
			return
		}

		if !utils.CandidateInCompany(ctx, candidateID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}

		var candidate entity.Candidate
		if err := ctx.DB.First(&candidate, "id = ?", candidateID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}

		candidate.Email = request.Email
		candidate.FirstName = request.FirstName
		candidate.LastName = request.LastName
		candidate.Phone = request.Phone
		candidate.Address = request.Address
		candidate.LinkedinProfile = request.LinkedinProfile
		candidate.JobTitle = request.JobTitle
		if err := ctx.DB.Save(&candidate).Error; err != nil {
			ctx.Logger.Error("Failed to update candidate", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update candidate"})
			return
		}

		c.JSON(http.StatusOK, candidate)
	}
}

func DeleteCandidate(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		candidateID, err := uuid.Parse(c.Param("candidateID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID"})
			return
		}

		if !utils.CandidateInCompany(ctx, candidateID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}

		var candidate entity.Candidate
		if err := ctx.DB.First(&candidate, "id = ?", candidateID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}

		if err := ctx.DB.Delete(&candidate).Error; err != nil {
			ctx.Logger.Error("Failed to delete candidate", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete candidate"})
			return
		}

		if err := utils.RemoveDocument(ctx, candidate.ID.String()); err != nil {
			ctx.Logger.Warn("Failed to remove candidate from index", zap.Error(err))
		}

		c.JSON(http.StatusOK, candidate)
	}
}
