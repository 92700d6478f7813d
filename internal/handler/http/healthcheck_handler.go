package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthcheck reports liveness.
func Healthcheck(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, gin.H{"status": "ok"})
}
