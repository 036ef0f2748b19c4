package http

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
	"github.com/seodius/KappaRecruit/internal/utils"
	"go.uber.org/zap"
)

type resumeData struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	entity.ResumeDocument
}

// CreateResume accepts a multipart form: the resume file under "file" and
// the structured resume JSON under "resume_data". The file is stored under a
// generated name so client filenames never reach the filesystem.
func CreateResume(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		rawData := c.PostForm("resume_data")
		if rawData == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing resume_data form field"})
			return
		}

		var data resumeData
		if err := json.Unmarshal([]byte(rawData), &data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume_data payload"})
			return
		}
		if data.CandidateID == uuid.Nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing candidate_id"})
			return
		}

		if !utils.CandidateInCompany(ctx, data.CandidateID, companyID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found or access denied"})
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get file from request"})
			return
		}

		src, err := file.Open()
		if err != nil {
			ctx.Logger.Error("Failed to open file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		safeName := uuid.NewString() + filepath.Ext(file.Filename)
		location, err := ctx.Store.Save(c.Request.Context(), safeName, src)
		if err != nil {
			ctx.Logger.Error("Failed to store resume file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store resume file"})
			return
		}

		resume := entity.Resume{
			CandidateID:  data.CandidateID,
			FileLocation: location,
			ParsedData:   data.ResumeDocument,
		}
		if err := ctx.DB.Create(&resume).Error; err != nil {
			ctx.Logger.Error("Failed to create resume", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resume"})
			return
		}

		c.JSON(http.StatusOK, resume)
	}
}

func GetResumesByCandidate(ctx *appcontext.Context) gin.HandlerFunc {
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
			c.JSON(http.StatusOK, gin.H{"resumes": []entity.Resume{}})
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

func getResumeInCompany(ctx *appcontext.Context, c *gin.Context, companyID uuid.UUID) (*entity.Resume, bool) {
	var resume entity.Resume
	if err := ctx.DB.First(&resume, "id = ?", c.Param("resumeID")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return nil, false
	}

	if !utils.CandidateInCompany(ctx, resume.CandidateID, companyID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return nil, false
	}

	return &resume, true
}

func GetResume(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		resume, ok := getResumeInCompany(ctx, c, companyID)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, resume)
	}
}

func UpdateResume(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var document entity.ResumeDocument
		if err := c.BindJSON(&document); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		resume, ok := getResumeInCompany(ctx, c, companyID)
		if !ok {
			return
		}

		resume.ParsedData = document
		if err := ctx.DB.Save(resume).Error; err != nil {
			ctx.Logger.Error("Failed to update resume", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update resume"})
			return
		}

		c.JSON(http.StatusOK, resume)
	}
}

func DeleteResume(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		resume, ok := getResumeInCompany(ctx, c, companyID)
		if !ok {
			return
		}

		if err := ctx.DB.Delete(resume).Error; err != nil {
			ctx.Logger.Error("Failed to delete resume", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resume"})
			return
		}

		if resume.FileLocation != "" {
			if err := ctx.Store.Delete(c.Request.Context(), filepath.Base(resume.FileLocation)); err != nil {
				ctx.Logger.Warn("Failed to delete resume file", zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, resume)
	}
}

// DownloadResume streams the stored file. Only the base name of the stored
// location is handed to the store, which keeps lookups inside the upload
// area.
func DownloadResume(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		resume, ok := getResumeInCompany(ctx, c, companyID)
		if !ok {
			return
		}
		if resume.FileLocation == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume file not found"})
			return
		}

		name := filepath.Base(resume.FileLocation)
		rc, err := ctx.Store.Open(c.Request.Context(), name)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume file not found on disk"})
			return
		}
		defer rc.Close()

		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Header("Content-Type", "application/octet-stream")
		c.Status(http.StatusOK)
		if _, err := io.Copy(c.Writer, rc); err != nil {
			ctx.Logger.Warn("Failed to stream resume file", zap.Error(err))
		}
	}
}
