package main

import (
	"ibs/src/db"
	"ibs/src/models"
	"ibs/src/types"
	"ibs/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/users/me", func(ctx *gin.Context) {
			email := ctx.GetString("email")
			user, err := utils.UserByEmail(email)
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		})
	return g
}

func adminUserHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/users", func(ctx *gin.Context) {
			db := db.GetDb()
			var users []models.User
			if err := db.
				Model(&models.User{}).
				Order("created_at desc").
				Find(&users).
				Error; err != nil {
				log.Printf("Error retrieving Users: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
		}).
		GET("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var user models.User
			if err := db.
				Model(&models.User{}).
				Where(&models.User{ID: params.ID}).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		PUT("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.DisplayName != nil {
				updates["display_name"] = *body.DisplayName
			}
			if body.Role != nil {
				role := types.UserRole(*body.Role)
				if role != types.ROLE_USER && role != types.ROLE_ADMIN && role != types.ROLE_SUPER_ADMIN {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
					return
				}
				updates["role"] = *body.Role
			}
			if body.IsApproved != nil {
				updates["is_approved"] = *body.IsApproved
			}
			if len(updates) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrNoFields.Error()})
				return
			}
			db := db.GetDb()
			var user models.User
			if err := db.
				Model(&models.User{}).
				Where(&models.User{ID: params.ID}).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			if err := db.
				Model(&models.User{}).
				Where(&models.User{ID: params.ID}).
				Updates(updates).
				Error; err != nil {
				log.Printf("Error updating User [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			db.Model(&models.User{}).Where(&models.User{ID: params.ID}).First(&user)
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		DELETE("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var user models.User
			if err := db.
				Model(&models.User{}).
				Where(&models.User{ID: params.ID}).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			if err := db.Delete(&models.User{}, params.ID).Error; err != nil {
				log.Printf("Error deleting User [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
