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

type contactRequest struct {
	Name         string     `json:"name" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Phone        string     `json:"phone"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

func CreateContact(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var request contactRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		if request.DepartmentID != nil {
			var count int64
			ctx.DB.Model(&entity.Department{}).
				Where("id = ? AND company_id = ?", *request.DepartmentID, companyID).
				Count(&count)
			if count == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Department not found"})
				return
			}
		}

		contact := entity.Contact{
			CompanyID:    companyID,
			DepartmentID: request.DepartmentID,
			Name:         request.Name,
			Email:        request.Email,
			Phone:        request.Phone,
		}
		if err := ctx.DB.Create(&contact).Error; err != nil {
			ctx.Logger.Error("Failed to create contact", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
			return
		}

		c.JSON(http.StatusOK, contact)
	}
}

func GetContacts(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := callerCompany(c)
		if !ok {
			return
		}

		var contacts []entity.Contact
		if err := ctx.DB.Where("company_id = ?", companyID).Find(&contacts).Error; err != nil {
			ctx.Logger.Error("Failed to get contacts", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contacts"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"contacts": contacts})
	}
}

func GetContact(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var contact entity.Contact
		if err := ctx.DB.
			Where("id = ? AND company_id = ?", c.Param("contactID"), companyID).
			First(&contact).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}

		c.JSON(http.StatusOK, contact)
	}
}

func UpdateContact(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var request contactRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		var contact entity.Contact
		if err := ctx.DB.
			Where("id = ? AND company_id = ?", c.Param("contactID"), companyID).
			First(&contact).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}

		contact.Name = request.Name
		contact.Email = request.Email
		contact.Phone = request.Phone
		contact.DepartmentID = request.DepartmentID
		if err := ctx.DB.Save(&contact).Error; err != nil {
			ctx.Logger.Error("Failed to update contact", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
			return
		}

		c.JSON(http.StatusOK, contact)
	}
}

func DeleteContact(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var contact entity.Contact
		if err := ctx.DB.
			Where("id = ? AND company_id = ?", c.Param("contactID"), companyID).
			First(&contact).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}

		if err := ctx.DB.Delete(&contact).Error; err != nil {
			ctx.Logger.Error("Failed to delete contact", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
			return
		}

		c.JSON(http.StatusOK, contact)
	}
}
