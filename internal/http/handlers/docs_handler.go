package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfirmPDF returns the booking confirmation as an inline PDF.
func (h *Handler) ConfirmPDF(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		notFound(c)
		return
	}
	pdf, filename, err := h.docs(c).BookingConfirmation(c.Request.Context(), int64(currentUser(c).ID), id)
	if err != nil {
		renderDomainError(c, err)
		return
	}
	saveSession(c)
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
