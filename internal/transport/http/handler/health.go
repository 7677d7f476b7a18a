package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/health
// The response shape is part of the public contract: the mobile client and
// the keep-alive pinger both expect exactly {"success":true}.
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
