package main

import (
	"ibs/src/types"
	"ibs/src/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

func adminBookingItemHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/booking-items", func(ctx *gin.Context) {
			items, err := utils.GetAllBookingItems()
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		GET("/booking-items/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := utils.GetBookingItem(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		}).
		GET("/booking-items/booking/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			items, err := utils.GetBookingItemsByBooking(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		GET("/booking-items/user/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			items, err := utils.GetBookingItemsByUser(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		POST("/booking-items", func(ctx *gin.Context) {
			var body types.CreateBookingItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := utils.CreateBookingItem(&body)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": item})
		}).
		POST("/booking-items/bulk", func(ctx *gin.Context) {
			var body types.CreateBookingItemsBulkRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			items, err := utils.CreateBookingItemsBulk(body.BookingID, body.Items)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": items, "count": len(items)})
		}).
		PUT("/booking-items/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateBookingItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := utils.UpdateBookingItem(params.ID, &body)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		}).
		PATCH("/booking-items/:id/quantity", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateQuantityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := utils.UpdateBookingItemQuantity(params.ID, *body.Quantity)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		}).
		DELETE("/booking-items/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.DeleteBookingItem(params.ID); err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		DELETE("/booking-items/booking/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.DeleteBookingItemsByBooking(params.ID); err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func bookingItemHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/booking-items/my", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			items, err := utils.GetBookingItemsByUser(userId)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		GET("/booking-items/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := utils.GetBookingItem(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			email := ctx.GetString("email")
			role := types.UserRole(ctx.GetString("role"))
			if err := utils.AuthorizeLineAccess(email, role, item); err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		}).
		PATCH("/booking-items/:id/quantity", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateQuantityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := utils.GetBookingItem(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			email := ctx.GetString("email")
			role := types.UserRole(ctx.GetString("role"))
			if err := utils.AuthorizeLineAccess(email, role, item); err != nil {
				respondBookingError(ctx, err)
				return
			}
			updated, err := utils.UpdateBookingItemQuantity(params.ID, *body.Quantity)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": updated})
		}).
		DELETE("/booking-items/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := utils.GetBookingItem(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			email := ctx.GetString("email")
			role := types.UserRole(ctx.GetString("role"))
			if err := utils.AuthorizeLineAccess(email, role, item); err != nil {
				respondBookingError(ctx, err)
				return
			}
			if err := utils.DeleteBookingItem(params.ID); err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
