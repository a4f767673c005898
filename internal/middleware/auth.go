package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"anoa.com/classsite/internal/repository"
	"anoa.com/classsite/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	adminRepo repository.AdminRepository
	secret    string
}

func NewAuthMiddleware(adminRepo repository.AdminRepository, secret string) *AuthMiddleware {
	return &AuthMiddleware{adminRepo: adminRepo, secret: secret}
}

// RequireAdmin parses the bearer token and verifies the subject is a known
// admin. The write routes (settings, upload, reset, resource mutations) sit
// behind this.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			abortUnauthorized(c, "authorization required")
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(m.secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			abortUnauthorized(c, "invalid token claims")
			return
		}

		adminID, err := uuid.Parse(claims.Subject)
		if err != nil {
			abortUnauthorized(c, "invalid token subject")
			return
		}

		admin, err := m.adminRepo.FindByID(c.Request.Context(), adminID)
		if err != nil {
			abortUnauthorized(c, "admin account not found")
			return
		}

		c.Set("admin_id", admin.ID.String())
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, response.Envelope{Success: false, Error: message})
	c.Abort()
}
