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

type interviewRequest struct {
	ScheduledAt     time.Time            `json:"scheduled_at" binding:"required"`
	DurationMinutes int                  `json:"duration_minutes" binding:"required"`
	InterviewType   entity.InterviewType `json:"interview_type" binding:"required"`
	InterviewerIDs  []uuid.UUID          `json:"interviewer_ids"`
}

// CreateInterview godoc
// @Summary Schedule an interview for an application
// @Tags interviews
// @Accept json
// @Produce json
// @Param applicationID path string true "Application ID"
// @Param interview body interviewRequest true "Interview details"
// @Success 200 {object} entity.Interview
// @Router /api/v1/applications/{applicationID}/interviews [post]
func CreateInterview(ctx *appcontext.Context) gin.HandlerFunc {
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

		var request interviewRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}
		if !request.InterviewType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview type"})
			return
		}

		if !utils.ApplicationInCompany(ctx, applicationID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found or access denied"})
			return
		}

		var panel []entity.User
		for _, interviewerID := range request.InterviewerIDs {
			var interviewer entity.User
			if err := ctx.DB.
				Where("id = ? AND company_id = ?", interviewerID, companyID).
				First(&interviewer).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Interviewer not found in company"})
				return
			}
			panel = append(panel, interviewer)
		}

		interview := entity.Interview{
			ApplicationID:   applicationID,
			ScheduledAt:     request.ScheduledAt,
			DurationMinutes: request.DurationMinutes,
			InterviewType:   request.InterviewType,
		}
		for _, interviewer := range panel {
			interview.Interviewers = append(interview.Interviewers, entity.Interviewer{UserID: interviewer.ID})
		}

		if err := ctx.DB.Create(&interview).Error; err != nil {
			ctx.Logger.Error("Failed to create interview", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create interview"})
			return
		}

		// Each panel member gets an invitation. Send failures are logged
		// and do not fail the request.
		var application entity.Application
		if err := ctx.DB.Preload("Candidate").First(&application, "id = ?", applicationID).Error; err == nil {
			candidateName := application.Candidate.FirstName + " " + application.Candidate.LastName
			for _, interviewer := range panel {
				if err := ctx.Mailer.SendInterviewInvitation(interviewer.Email, candidateName, interview.ScheduledAt); err != nil {
					ctx.Logger.Warn("Failed to send interview invitation",
						zap.String("interviewer_email", interviewer.Email), zap.Error(err))
				}
			}
		}

		c.JSON(http.StatusOK, interview)
	}
}

func GetInterview(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		interviewID, err := uuid.Parse(c.Param("interviewID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID"})
			return
		}

		if !utils.InterviewInCompany(ctx, interviewID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
			return
		}

		var interview entity.Interview
		if err := ctx.DB.
			Preload("Interviewers").
			Preload("Interviewers.User").
			Preload("Evaluations").
			First(&interview, "id = ?", interviewID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
			return
		}

		c.JSON(http.StatusOK, interview)
	}
}

type evaluationRequest struct {
	InterviewerID uuid.UUID `json:"interviewer_id" binding:"required"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
	Feedback      string    `json:"feedback"`
}

func CreateEvaluation(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		interviewID, err := uuid.Parse(c.Param("interviewID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID"})
			return
		}

		var request evaluationRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		if !utils.InterviewInCompany(ctx, interviewID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found or access denied"})
			return
		}

		var interviewerCount int64
		ctx.DB.Model(&entity.Interviewer{}).
			Where("interview_id = ? AND user_id = ?", interviewID, request.InterviewerID).
			Count(&interviewerCount)
		if interviewerCount == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Interviewer is not assigned to this interview"})
			return
		}

		evaluation := entity.Evaluation{
			InterviewID:   interviewID,
			InterviewerID: request.InterviewerID,
			Rating:        request.Rating,
			Feedback:      request.Feedback,
		}
		if err := ctx.DB.Create(&evaluation).Error; err != nil {
			ctx.Logger.Error("Failed to create evaluation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create evaluation"})
			return
		}

		c.JSON(http.StatusOK, evaluation)
	}
}
