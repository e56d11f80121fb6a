package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery renders the 500 page instead of a stack trace.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[PANIC] request_id=%s path=%s err=%v", GetRequestID(c), c.Request.URL.Path, recovered)
		if c.Writer.Written() {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"RequestID": GetRequestID(c)})
		c.Abort()
	})
}
