package main

import (
	"errors"
	"ibs/src/types"
	"ibs/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondBookingError maps service errors onto the response codes the API
// contract promises: 400 validation, 403 ownership, 404 missing row, 500
// anything the storage layer threw.
func respondBookingError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrNoFields), errors.Is(err, utils.ErrInvalidStatus):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrAccessDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	default:
		log.Printf("Could not complete request: %s\n", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}

func adminBookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			bookings, err := utils.GetAllBookings()
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/id/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := utils.GetBooking(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		GET("/bookings/user/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			bookings, err := utils.GetUserBookings(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := utils.CreateCompleteBooking(&body, ctx.GetUint("id"))
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		PUT("/bookings/id/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := utils.UpdateCompleteBooking(params.ID, &body)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PATCH("/bookings/id/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, _, err := utils.UpdateBookingStatus(params.ID, body.Status)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		DELETE("/bookings/id/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.DeleteBooking(params.ID); err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings/my-bookings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			bookings, err := utils.GetUserBookings(userId)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := utils.GetBooking(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			email := ctx.GetString("email")
			role := types.UserRole(ctx.GetString("role"))
			if err := utils.AuthorizeBookingAccess(email, role, booking); err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// Owners may only book for themselves.
			body.UserID = 0
			booking, err := utils.CreateCompleteBooking(&body, ctx.GetUint("id"))
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		PUT("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := utils.GetBooking(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			email := ctx.GetString("email")
			role := types.UserRole(ctx.GetString("role"))
			if err := utils.AuthorizeBookingAccess(email, role, booking); err != nil {
				respondBookingError(ctx, err)
				return
			}
			updated, err := utils.UpdateCompleteBooking(params.ID, &body)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": updated})
		}).
		DELETE("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := utils.GetBooking(params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			email := ctx.GetString("email")
			role := types.UserRole(ctx.GetString("role"))
			if err := utils.AuthorizeBookingAccess(email, role, booking); err != nil {
				respondBookingError(ctx, err)
				return
			}
			if err := utils.DeleteBooking(params.ID); err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
