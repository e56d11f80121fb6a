package handlers

import (
	"context"
	"net/http"
	"time"

	intdb "travelbook/internal/db"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "travelbook is running"})
}

func (h *Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if !intdb.HasTable(h.DB, h.Driver, "trip_bookings") {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "schema missing, run migrate"})
		return
	}
	var users, bookings int
	if err := h.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	if err := h.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM trip_bookings").Scan(&bookings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "users": users, "bookings": bookings})
}
