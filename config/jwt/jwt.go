package jwt

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"snapill/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenValidity = 24 * time.Hour

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "snapill-dev-secret"
	}
	return []byte(s)
}

func GenerateJWT(userId string, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userId,
		"email":  email,
		"exp":    time.Now().Add(tokenValidity).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

/*
* Validate the Bearer token and place userId and email into the request context
* Every store call after this middleware is scoped by that userId
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.TOKEN_NOT_PROVIDED)))
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New(util.INVALID_TOKEN)
			}
			return secret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.INVALID_TOKEN)))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.INVALID_TOKEN)))
			return
		}
		userId, _ := claims["userId"].(string)
		email, _ := claims["email"].(string)
		if userId == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.INVALID_TOKEN)))
			return
		}

		c.Set("userId", userId)
		c.Set("email", email)
		c.Next()
	}
}
