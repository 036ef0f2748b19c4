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

type jobRequest struct {
	CompanyID uuid.UUID `json:"company_id" binding:"required"`
	entity.JobPayload
}

// CreateJob godoc
// @Summary Create a job posting for the caller's company
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/v1/jobs [post]
func CreateJob(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request jobRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if request.CompanyID != companyID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Job could not be created for this company"})
			return
		}

		var company entity.Company
		if err := ctx.DB.First(&company, "id = ?", companyID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Job could not be created for this company"})
			return
		}

		job := entity.Job{
			CompanyID: companyID,
			Data:      request.JobPayload,
		}
		if err := ctx.DB.Create(&job).Error; err != nil {
			ctx.Logger.Error("Failed to create job", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
			return
		}
		job.Company = company

		if err := utils.IndexDocument(ctx, utils.JobToDocument(&job)); err != nil {
			ctx.Logger.Warn("Failed to index job", zap.Error(err))
		}

		c.JSON(http.StatusOK, job)
	}
}

func GetJobs(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var jobs []entity.Job
		if err := ctx.DB.Preload("Company").Preload("StatusHistory").
			Where("company_id = ?", companyID).Find(&jobs).Error; err != nil {
			ctx.Logger.Error("Failed to get jobs", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get jobs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
	}
}

func GetJob(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var job entity.Job
		if err := ctx.DB.Preload("Company").Preload("StatusHistory").
			Where("id = ? AND company_id = ?", c.Param("jobID"), companyID).First(&job).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}

		c.JSON(http.StatusOK, job)
	}
}

func UpdateJob(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request jobRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var job entity.Job
		if err := ctx.DB.Where("id = ? AND company_id = ?", c.Param("jobID"), companyID).First(&job).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}

		job.Data = request.JobPayload
		if err := ctx.DB.Save(&job).Error; err != nil {
			ctx.Logger.Error("Failed to update job", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
			return
		}

		if err := utils.IndexDocument(ctx, utils.JobToDocument(&job)); err != nil {
			ctx.Logger.Warn("Failed to index job", zap.Error(err))
		}

		c.JSON(http.StatusOK, job)
	}
}

func DeleteJob(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var job entity.Job
		if err := ctx.DB.Where("id = ? AND company_id = ?", c.Param("jobID"), companyID).First(&job).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}

		if err := ctx.DB.Delete(&job).Error; err != nil {
			ctx.Logger.Error("Failed to delete job", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
			return
		}

		if err := utils.RemoveDocument(ctx, job.ID.String()); err != nil {
			ctx.Logger.Warn("Failed to remove job from index", zap.Error(err))
		}

		c.JSON(http.StatusOK, job)
	}
}

// CreateJobStatusEvent appends to the job's status history. The job's
// current status is always the most recent event.
func CreateJobStatusEvent(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type statusEventRequest struct {
			Status          entity.JobStatus `json:"status" binding:"required"`
			Reason          string           `json:"reason"`
			ChangedByUserID uuid.UUID        `json:"changed_by_user_id"`
		}

		var request statusEventRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}
		if !request.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job status"})
			return
		}

		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		jobID, err := uuid.Parse(c.Param("jobID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
			return
		}

		if !utils.JobInCompany(ctx, jobID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found or access denied"})
			return
		}

		if request.ChangedByUserID == uuid.Nil {
			if user, err := utils.GetUserFromContext(c); err == nil {
				request.ChangedByUserID = user.ID
			}
		}

		event := entity.JobStatusEvent{
			JobID:           jobID,
			Status:          request.Status,
			Reason:          request.Reason,
			ChangedByUserID: request.ChangedByUserID,
		}
		if err := ctx.DB.Create(&event).Error; err != nil {
			ctx.Logger.Error("Failed to create job status event", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job status event"})
			return
		}

		c.JSON(http.StatusOK, event)
	}
}
