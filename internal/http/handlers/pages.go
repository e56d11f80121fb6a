package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Landing(c *gin.Context) {
	render(c, http.StatusOK, "landing.html", nil)
}

func (h *Handler) Menu(c *gin.Context) {
	render(c, http.StatusOK, "menu.html", gin.H{
		"Title":        "Destinations",
		"Destinations": h.Catalog.Destinations,
	})
}

func (h *Handler) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", gin.H{"Title": "About"})
}

func (h *Handler) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", gin.H{"Title": "Contact"})
}

func (h *Handler) Checkout(c *gin.Context) {
	render(c, http.StatusOK, "checkout.html", gin.H{"Title": "Checkout"})
}
