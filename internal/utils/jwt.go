package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	jwtKey    []byte
	jwtMethod jwt.SigningMethod = jwt.SigningMethodHS256
	tokenTTL                    = 30 * time.Minute
)

// InitJWT configures the signing key, algorithm, and token lifetime. Must be
// called once at startup before any token is issued or validated. Only HMAC
// algorithms are supported; an empty algorithm means HS256.
func InitJWT(secret, algorithm string, ttl time.Duration) error {
	if algorithm == "" {
		algorithm = "HS256"
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	jwtKey = []byte(secret)
	jwtMethod = method
	if ttl > 0 {
		tokenTTL = ttl
	}
	return nil
}

type Claims struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// GenerateJWT issues an access token carrying the user's identity and the
// company the token is scoped to. Every tenant check downstream starts from
// the company id baked in here.
func GenerateJWT(userID, companyID uuid.UUID, email string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)
	claims := &Claims{
		UserID:    userID.String(),
		CompanyID: companyID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwtMethod, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwtMethod.Alg()}))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func GetClaims(c *gin.Context) (*Claims, error) {
	raw, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := raw.(*Claims)
	if !ok {
		return nil, errors.New("claims are not of type *Claims")
	}

	return claims, nil
}

func GetUserIDFromClaims(c *gin.Context) (uuid.UUID, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, errors.New("invalid user ID format")
	}

	return userID, nil
}

func GetCompanyIDFromClaims(c *gin.Context) (uuid.UUID, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	companyID, err := uuid.Parse(claims.CompanyID)
	if err != nil {
		return uuid.Nil, errors.New("invalid company ID format")
	}

	return companyID, nil
}
