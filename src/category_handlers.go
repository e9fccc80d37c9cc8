package main

import (
	"ibs/src/db"
	"ibs/src/models"
	"ibs/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func categoryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/categories", func(ctx *gin.Context) {
			db := db.GetDb()
			var categories []models.Category
			if err := db.
				Model(&models.Category{}).
				Order("name asc").
				Find(&categories).
				Error; err != nil {
				log.Printf("Error retrieving Categories: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": categories, "count": len(categories)})
		}).
		GET("/categories/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var category models.Category
			if err := db.
				Model(&models.Category{}).
				Where(&models.Category{ID: params.ID}).
				Preload("Items").
				First(&category).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": category})
		})
	return g
}

func adminCategoryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/categories", func(ctx *gin.Context) {
			var body types.CreateCategoryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			category := models.Category{
				Name:        body.Name,
				Description: body.Description,
			}
			db := db.GetDb()
			if err := db.Create(&category).Error; err != nil {
				log.Printf("Error creating Category: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": category})
		}).
		PUT("/categories/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateCategoryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var category models.Category
			if err := db.
				Model(&models.Category{}).
				Where(&models.Category{ID: params.ID}).
				First(&category).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			if err := db.
				Model(&models.Category{}).
				Where(&models.Category{ID: params.ID}).
				Updates(&models.Category{Name: body.Name, Description: body.Description}).
				Error; err != nil {
				log.Printf("Error updating Category [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			db.Model(&models.Category{}).Where(&models.Category{ID: params.ID}).First(&category)
			ctx.JSON(http.StatusOK, gin.H{"data": category})
		}).
		DELETE("/categories/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var category models.Category
			if err := db.
				Model(&models.Category{}).
				Where(&models.Category{ID: params.ID}).
				First(&category).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			if err := db.Delete(&models.Category{}, params.ID).Error; err != nil {
				log.Printf("Error deleting Category [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
