package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
	"go.uber.org/zap"
)

type roleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Permissions []string `json:"permissions"`
}

func CreateRole(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request roleRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		var count int64
		ctx.DB.Model(&entity.Role{}).Where("name = ?", request.Name).Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role already exists"})
			return
		}

		role := entity.Role{
			Name:        request.Name,
			Permissions: request.Permissions,
		}
		if err := ctx.DB.Create(&role).Error; err != nil {
			ctx.Logger.Error("Failed to create role", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role"})
			return
		}

		c.JSON(http.StatusOK, role)
	}
}

func GetRoles(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roles []entity.Role
		if err := ctx.DB.Find(&roles).Error; err != nil {
			ctx.Logger.Error("Failed to get roles", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get roles"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"roles": roles})
	}
}

func GetRole(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var role entity.Role
		if err := ctx.DB.First(&role, "id = ?", c.Param("roleID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
			return
		}

		c.JSON(http.StatusOK, role)
	}
}

func UpdateRole(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request roleRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		var role entity.Role
		if err := ctx.DB.First(&role, "id = ?", c.Param("roleID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
			return
		}

		role.Name = request.Name
		role.Permissions = request.Permissions
		if err := ctx.DB.Save(&role).Error; err != nil {
			ctx.Logger.Error("Failed to update role", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
			return
		}

		c.JSON(http.StatusOK, role)
	}
}

func DeleteRole(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var role entity.Role
		if err := ctx.DB.First(&role, "id = ?", c.Param("roleID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
			return
		}

		var assigned int64
		ctx.DB.Model(&entity.User{}).Where("role_id = ?", role.ID).Count(&assigned)
		if assigned > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role is assigned to users and cannot be deleted"})
			return
		}

		if err := ctx.DB.Delete(&role).Error; err != nil {
			ctx.Logger.Error("Failed to delete role", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete role"})
			return
		}

		c.JSON(http.StatusOK, role)
	}
}
