package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/seodius/KappaRecruit/internal/entity"
)

// GetUserFromContext returns the user loaded by the auth middleware.
func GetUserFromContext(c *gin.Context) (*entity.User, error) {
	raw, exists := c.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	user, ok := raw.(*entity.User)
	if !ok {
		return nil, errors.New("user is not of type *entity.User")
	}

	return user, nil
}
