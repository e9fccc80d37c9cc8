package main

import (
	"context"
	"ibs/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/statuses", func(ctx *gin.Context) {
			statuses, err := utils.GetStatuses(context.Background())
			if err != nil {
				log.Printf("Error retrieving Statuses: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": statuses, "count": len(statuses)})
		})
	return g
}
