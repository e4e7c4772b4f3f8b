package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/responses"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secretKey string

func SetSecretKey(key string) {
	secretKey = key
}

func GetSecretKey() string {
	return secretKey
}

// AuthMiddleware validates the "Authorization: Token <value>" header issued
// by the login endpoint.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Gets the authorization header
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader == "" {
			responses.AbortWithError(ctx, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		// Divides the header into scheme and token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Token" {
			responses.AbortWithError(ctx, http.StatusUnauthorized, "Invalid authorization format, expected 'Token <value>'")
			return
		}

		// Verifies the JWT token
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		})

		// Checks if the token is valid
		if err != nil || !token.Valid {
			responses.AbortWithError(ctx, http.StatusUnauthorized, "Invalid token")
			return
		}

		// Adds expiration validation for the token
		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().Unix() > int64(exp) {
				responses.AbortWithError(ctx, http.StatusUnauthorized, "Token expired")
				return
			}
		}

		// Sets the token claims in the context (user ID)
		ctx.Set("userId", claims["id"])
		ctx.Next()
	}
}
