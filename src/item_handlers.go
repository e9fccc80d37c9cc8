package main

import (
	"context"
	"ibs/src/db"
	"ibs/src/lib"
	"ibs/src/models"
	"ibs/src/types"
	"ibs/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

func itemHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/items", func(ctx *gin.Context) {
			db := db.GetDb()
			var items []models.Item
			if err := db.
				Model(&models.Item{}).
				Preload("Category").
				Order("created_at desc").
				Find(&items).
				Error; err != nil {
				log.Printf("Error retrieving Items: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		GET("/items/availability", func(ctx *gin.Context) {
			var query types.AvailabilityQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, err := utils.ParseBookingDate(query.StartDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			end, err := utils.ParseBookingDate(query.EndDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			data, err := utils.GetItemsAvailability(context.Background(), start, end)
			if err != nil {
				log.Printf("Error computing availability: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/items/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var item models.Item
			if err := db.
				Model(&models.Item{}).
				Where(&models.Item{ID: params.ID}).
				Preload("Category").
				First(&item).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		})
	return g
}

func adminItemHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/items", func(ctx *gin.Context) {
			var body types.CreateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item := models.Item{
				Name:        body.Name,
				Slug:        slug.Make(body.Name),
				Description: body.Description,
				ImageURL:    body.ImageURL,
				Price:       body.Price,
				Quantity:    body.Quantity,
				CategoryID:  body.CategoryID,
				Size:        body.Size,
				Color:       body.Color,
				Location:    body.Location,
				Available:   true,
			}
			if body.Available != nil {
				item.Available = *body.Available
			}
			db := db.GetDb()
			if err := db.Create(&item).Error; err != nil {
				log.Printf("Error creating Item: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			lib.InvalidateAvailabilityCache(context.Background())
			ctx.JSON(http.StatusCreated, gin.H{"data": item})
		}).
		PUT("/items/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.Name != nil {
				updates["name"] = *body.Name
				updates["slug"] = slug.Make(*body.Name)
			}
			if body.Description != nil {
				updates["description"] = *body.Description
			}
			if body.ImageURL != nil {
				updates["image_url"] = *body.ImageURL
			}
			if body.Price != nil {
				updates["price"] = *body.Price
			}
			if body.Quantity != nil {
				updates["quantity"] = *body.Quantity
			}
			if body.CategoryID != nil {
				updates["category_id"] = *body.CategoryID
			}
			if body.Size != nil {
				updates["size"] = *body.Size
			}
			if body.Color != nil {
				updates["color"] = *body.Color
			}
			if body.Location != nil {
				updates["location"] = *body.Location
			}
			if body.Available != nil {
				updates["available"] = *body.Available
			}
			if len(updates) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrNoFields.Error()})
				return
			}
			db := db.GetDb()
			var item models.Item
			if err := db.
				Model(&models.Item{}).
				Where(&models.Item{ID: params.ID}).
				First(&item).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
				return
			}
			if err := db.
				Model(&models.Item{}).
				Where(&models.Item{ID: params.ID}).
				Updates(updates).
				Error; err != nil {
				log.Printf("Error updating Item [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			lib.InvalidateAvailabilityCache(context.Background())
			db.Model(&models.Item{}).Where(&models.Item{ID: params.ID}).First(&item)
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		}).
		DELETE("/items/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var item models.Item
			if err := db.
				Model(&models.Item{}).
				Where(&models.Item{ID: params.ID}).
				First(&item).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
				return
			}
			if err := db.Delete(&models.Item{}, params.ID).Error; err != nil {
				log.Printf("Error deleting Item [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			lib.InvalidateAvailabilityCache(context.Background())
			ctx.Status(http.StatusNoContent)
		})
	return g
}
