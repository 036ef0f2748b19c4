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

type departmentRequest struct {
	Name               string     `json:"name" binding:"required"`
	ParentDepartmentID *uuid.UUID `json:"parent_department_id"`
}

// callerCompany parses the companyID path parameter and rejects requests
// that target a company other than the caller's own.
func callerCompany(c *gin.Context) (uuid.UUID, bool) {
	companyID, err := utils.GetCompanyIDFromClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}

	pathCompanyID, err := uuid.Parse(c.Param("companyID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID"})
		return uuid.Nil, false
	}

	if pathCompanyID != companyID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Operation not permitted"})
		return uuid.Nil, false
	}

	return companyID, true
}

func CreateDepartment(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := callerCompany(c)
		if !ok {
			return
		}

		var request departmentRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		if request.ParentDepartmentID != nil {
			var count int64
			ctx.DB.Model(&entity.Department{}).
				Where("id = ? AND company_id = ?", *request.ParentDepartmentID, companyID).
				Count(&count)
			if count == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent department not found"})
				return
			}
		}

		department := entity.Department{
			CompanyID:          companyID,
			Name:               request.Name,
			ParentDepartmentID: request.ParentDepartmentID,
		}
		if err := ctx.DB.Create(&department).Error; err != nil {
			ctx.Logger.Error("Failed to create department", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create department"})
			return
		}

		c.JSON(http.StatusOK, department)
	}
}

func GetDepartments(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := callerCompany(c)
		if !ok {
			return
		}

		var departments []entity.Department
		if err := ctx.DB.
			Preload("Children").
			Preload("Contacts").
			Where("company_id = ?", companyID).
			Find(&departments).Error; err != nil {
			ctx.Logger.Error("Failed to get departments", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get departments"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"departments": departments})
	}
}

func GetDepartment(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var department entity.Department
		if err := ctx.DB.
			Preload("Children").
			Preload("Contacts").
			Where("id = ? AND company_id = ?", c.Param("departmentID"), companyID).
			First(&department).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
			return
		}

		c.JSON(http.StatusOK, department)
	}
}

func UpdateDepartment(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var request departmentRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		var department entity.Department
		if err := ctx.DB.
			Where("id = ? AND company_id = ?", c.Param("departmentID"), companyID).
			First(&department).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
			return
		}

		department.Name = request.Name
		department.ParentDepartmentID = request.ParentDepartmentID
		if err := ctx.DB.Save(&department).Error; err != nil {
			ctx.Logger.Error("Failed to update department", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update department"})
			return
		}

		c.JSON(http.StatusOK, department)
	}
}

func DeleteDepartment(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var department entity.Department
		if err := ctx.DB.
			Where("id = ? AND company_id = ?", c.Param("departmentID"), companyID).
			First(&department).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
			return
		}

		if err := ctx.DB.Delete(&department).Error; err != nil {
			ctx.Logger.Error("Failed to delete department", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete department"})
			return
		}

		c.JSON(http.StatusOK, department)
	}
}
