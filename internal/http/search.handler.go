package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/utils"
	"go.uber.org/zap"
)

// SearchRecords queries the shared search index. Queries may be prefixed
// with "job:" or "cand:" to restrict results to a single record type.
// Results are always filtered to the caller's company.
func SearchRecords(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := utils.GetCompanyIDFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if ctx.MeilisearchClient == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search is not configured"})
			return
		}

		query := strings.TrimSpace(c.Query("q"))
		filter := fmt.Sprintf("company_id = %q", companyID.String())

		switch {
		case strings.HasPrefix(query, "job:"):
			query = strings.TrimSpace(strings.TrimPrefix(query, "job:"))
			filter += ` AND type = "job"`
		case strings.HasPrefix(query, "cand:"):
			query = strings.TrimSpace(strings.TrimPrefix(query, "cand:"))
			filter += ` AND type = "candidate"`
		}

		response, err := ctx.MeilisearchClient.Index(utils.SearchIndex).Search(query, &meilisearch.SearchRequest{
			Filter: filter,
			Limit:  50,
		})
		if err != nil {
			ctx.Logger.Error("Search request failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search request failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"results": response.Hits})
	}
}
