package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
	"github.com/seodius/KappaRecruit/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Root godoc
// @Summary Liveness probe
// @Success 200 {object} map[string]string
// @Router / [get]
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ATS API is running!"})
	}
}

// Register godoc
// @Summary Register a new user and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/v1/auth/register [post]
func Register(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type registerRequest struct {
			Email     string    `json:"email" binding:"required,email"`
			Password  string    `json:"password" binding:"required"`
			FirstName string    `json:"first_name"`
			LastName  string    `json:"last_name"`
			CompanyID uuid.UUID `json:"company_id" binding:"required"`
			RoleID    uuid.UUID `json:"role_id" binding:"required"`
		}

		var request registerRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		var existing entity.User
		if err := ctx.DB.Where("email = ?", request.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}

		passwordHash, err := utils.HashPassword(request.Password)
		if err != nil {
			ctx.Logger.Error("Failed to hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		user := entity.User{
			Email:        request.Email,
			PasswordHash: passwordHash,
			FirstName:    request.FirstName,
			LastName:     request.LastName,
			CompanyID:    request.CompanyID,
			RoleID:       request.RoleID,
		}
		if err := ctx.DB.Create(&user).Error; err != nil {
			ctx.Logger.Error("Failed to create user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := utils.GenerateJWT(user.ID, user.CompanyID, user.Email)
		if err != nil {
			ctx.Logger.Error("Failed to generate JWT token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
	}
}

// Login godoc
// @Summary Exchange email and password for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/v1/auth/login [post]
func Login(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type loginRequest struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}

		var request loginRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		var user entity.User
		if err := ctx.DB.Where("email = ?", request.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
			return
		}

		if !utils.CheckPassword(request.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
			return
		}

		token, err := utils.GenerateJWT(user.ID, user.CompanyID, user.Email)
		if err != nil {
			ctx.Logger.Error("Failed to generate JWT token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
	}
}

// GoogleLogin redirects to the Google consent screen. Only users that were
// already registered can complete the flow.
func GoogleLogin(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctx.OAuth2Config == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured"})
			return
		}
		url := ctx.OAuth2Config.AuthCodeURL("state", oauth2.AccessTypeOffline)
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

func GoogleCallback(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctx.OAuth2Config == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured"})
			return
		}

		code := c.Query("code")
		token, err := ctx.OAuth2Config.Exchange(context.Background(), code)
		if err != nil {
			ctx.Logger.Error("Failed to exchange token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to exchange token"})
			return
		}

		client := ctx.OAuth2Config.Client(context.Background(), token)
		resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
		if err != nil {
			ctx.Logger.Error("Failed to get user info", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user info"})
			return
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			ctx.Logger.Error("Failed to read user info response body", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read user info response body"})
			return
		}

		googleUser := struct {
			Sub   string `json:"sub"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}{}
		if err := json.Unmarshal(body, &googleUser); err != nil {
			ctx.Logger.Error("Failed to unmarshal user info", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unmarshal user info"})
			return
		}

		// Accounts carry a company and role, so they cannot be created from
		// an OAuth identity alone.
		var user entity.User
		if err := ctx.DB.Where("email = ?", googleUser.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "No account registered for this email"})
			return
		}

		tokenString, err := utils.GenerateJWT(user.ID, user.CompanyID, user.Email)
		if err != nil {
			ctx.Logger.Error("Failed to generate JWT token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": tokenString, "token_type": "bearer"})
	}
}

func Logout(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("token", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
	}
}

// GetUserInfo godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func GetUserInfo(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// InviteUser creates a user inside the caller's company and emails them a
// login link. The invitee resets their password out of band.
func InviteUser(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type inviteUserRequest struct {
			Email  string    `json:"email" binding:"required,email"`
			RoleID uuid.UUID `json:"role_id" binding:"required"`
		}

		var request inviteUserRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		inviter, err := utils.GetUserFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var existing entity.User
		if err := ctx.DB.Where("email = ?", request.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}

		// Placeholder credential until the invitee sets their own.
		passwordHash, err := utils.HashPassword(uuid.NewString())
		if err != nil {
			ctx.Logger.Error("Failed to hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to invite user"})
			return
		}

		invitee := entity.User{
			Email:        request.Email,
			PasswordHash: passwordHash,
			CompanyID:    inviter.CompanyID,
			RoleID:       request.RoleID,
		}
		if err := ctx.DB.Create(&invitee).Error; err != nil {
			ctx.Logger.Error("Failed to create user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to invite user"})
			return
		}

		inviterName := inviter.FirstName + " " + inviter.LastName
		if err := ctx.Mailer.SendUserInvitation(request.Email, inviterName); err != nil {
			ctx.Logger.Warn("Failed to send invitation email", zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{"message": "User successfully invited!"})
	}
}
