package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
	"github.com/seodius/KappaRecruit/internal/utils"
	"go.uber.org/zap"
)

type applicationRequest struct {
	JobID       uuid.UUID `json:"job_id" binding:"required"`
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
	Source      string    `json:"source"`
}

// CreateApplication links a candidate to one of the company's jobs.
func CreateApplication(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request applicationRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if !utils.JobInCompany(ctx, request.JobID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found or access denied"})
			return
		}

		application := entity.Application{
			JobID:       request.JobID,
			CandidateID: request.CandidateID,
			Source:      request.Source,
		}
		if err := ctx.DB.Create(&application).Error; err != nil {
			ctx.Logger.Error("Failed to create application", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
			return
		}

		c.JSON(http.StatusOK, application)
	}
}

func GetApplications(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// Raw joins bypass gorm's soft-delete scope, so exclude deleted
		// jobs explicitly to stay consistent with the point lookups.
		var applications []entity.Application
		if err := ctx.DB.Preload("StatusHistory").
			Joins("JOIN jobs ON jobs.id = applications.job_id AND jobs.deleted_at IS NULL").
			Where("jobs.company_id = ?", companyID).
			Find(&applications).Error; err != nil {
			ctx.Logger.Error("Failed to get applications", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get applications"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"applications": applications})
	}
}

func GetApplication(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		applicationID, err := uuid.Parse(c.Param("applicationID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
			return
		}

		if !utils.ApplicationInCompany(ctx, applicationID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}

		var application entity.Application
		if err := ctx.DB.Preload("StatusHistory").First(&application, "id = ?", applicationID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}

		c.JSON(http.StatusOK, application)
	}
}

func UpdateApplication(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request applicationRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		applicationID, err := uuid.Parse(c.Param("applicationID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
			return
		}

		if !utils.ApplicationInCompany(ctx, applicationID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}

		var application entity.Application
		if err := ctx.DB.First(&application, "id = ?", applicationID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}

		// Moving the application to another job requires that job to belong
		// to the same company.
		if request.JobID != application.JobID && !utils.JobInCompany(ctx, request.JobID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found or access denied"})
			return
		}

		application.JobID = request.JobID
		application.CandidateID = request.CandidateID
		application.Source = request.Source
		if err := ctx.DB.Save(&application).Error; err != nil {
			ctx.Logger.Error("Failed to update application", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
			return
		}

		c.JSON(http.StatusOK, application)
	}
}

func DeleteApplication(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		applicationID, err := uuid.Parse(c.Param("applicationID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
			return
		}

		if !utils.ApplicationInCompany(ctx, applicationID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}

		var application entity.Application
		if err := ctx.DB.First(&application, "id = ?", applicationID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}

		if err := ctx.DB.Delete(&application).Error; err != nil {
			ctx.Logger.Error("Failed to delete application", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
			return
		}

		c.JSON(http.StatusOK, application)
	}
}

// CreateApplicationStatusEvent appends a pipeline transition to the
// application's audit history.
func CreateApplicationStatusEvent(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type statusEventRequest struct {
			Status          entity.ApplicationStatus `json:"status" binding:"required"`
			Reason          string                   `json:"reason"`
			NextActionDate  *time.Time               `json:"next_action_date"`
			ChangedByUserID uuid.UUID                `json:"changed_by_user_id"`
		}

		var request statusEventRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}
		if !request.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application status"})
			return
		}

		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		applicationID, err := uuid.Parse(c.Param("applicationID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
			return
		}

		if !utils.ApplicationInCompany(ctx, applicationID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found or access denied"})
			return
		}

		if request.ChangedByUserID == uuid.Nil {
			if user, err := utils.GetUserFromContext(c); err == nil {
				request.ChangedByUserID = user.ID
			}
		}

		event := entity.ApplicationStatusEvent{
			ApplicationID:   applicationID,
			Status:          request.Status,
			Reason:          request.Reason,
			NextActionDate:  request.NextActionDate,
			ChangedByUserID: request.ChangedByUserID,
		}
		if err := ctx.DB.Create(&event).Error; err != nil {
			ctx.Logger.Error("Failed to create application status event", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application status event"})
			return
		}

		c.JSON(http.StatusOK, event)
	}
}
