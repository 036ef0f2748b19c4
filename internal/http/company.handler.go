package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
	"github.com/seodius/KappaRecruit/internal/utils"
	"go.uber.org/zap"
)

// GetCompanyMembers godoc
// @Summary List users belonging to the caller's company
// @Tags companies
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/companies/members [get]
func GetCompanyMembers(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var users []entity.User
		if err := ctx.DB.
			Preload("Role").
			Where("company_id = ?", companyID).
			Find(&users).Error; err != nil {
			ctx.Logger.Error("Failed to get company members", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get company members"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"members": users})
	}
}
