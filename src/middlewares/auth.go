package middlewares

import (
	"ibs/src/db"
	"ibs/src/models"
	"ibs/src/types"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	parts := strings.SplitN(bearerToken, " ", 2)
	if len(parts) < 2 || parts[1] == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	reqToken := parts[1]
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if !tkn.Valid {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	db := db.GetDb()
	var user models.User
	err = db.
		Model(&models.User{}).
		Where(&models.User{Email: claims.Email}).
		First(&user).
		Error
	if err != nil || user.ID < 1 {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if !user.IsApproved {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account is awaiting approval"})
		return
	}
	ctx.Set("email", user.Email)
	ctx.Set("id", user.ID)
	ctx.Set("uid", user.UID)
	ctx.Set("role", user.Role)
}

// AdminOnly guards the admin route group. Runs after AuthMiddleware.
func AdminOnly(ctx *gin.Context) {
	role := types.UserRole(ctx.GetString("role"))
	if !role.IsAdmin() {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}
}
