package handlers

import (
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/http/middleware"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not found"})
}

// NoRoute renders the 404 page for unknown paths.
func NoRoute(c *gin.Context) {
	notFound(c)
}

// renderDomainError maps errors that escape a page's own handling.
// Validation errors are redisplayed by the page itself.
func renderDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		notFound(c)
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "error", "path", c.Request.URL.Path, "err", err)
		render(c, http.StatusInternalServerError, "500.html", gin.H{"Title": "Error"})
	}
}
