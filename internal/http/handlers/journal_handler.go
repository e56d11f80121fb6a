package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"travelbook/internal/domain"
	"travelbook/internal/forms"
	"travelbook/internal/session"

	"github.com/gin-gonic/gin"
)

// CreateJournal handles GET and POST /createjournal/.
func (h *Handler) CreateJournal(c *gin.Context) {
	s := session.From(c)
	svc := h.journals(c)
	ctx := c.Request.Context()

	var f forms.JournalForm
	errs := domain.FieldErrors{}

	if c.Request.Method == http.MethodPost {
		_ = c.ShouldBind(&f)
		cover, err := c.FormFile("cover")
		if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			errs.Add("cover", "The submitted data was not a file.")
		}
		if errs.Empty() {
			j, err := svc.Create(ctx, &f, cover)
			if err == nil {
				s.Success("Journal created successfully!")
				redirect(c, "/map/"+strconv.FormatInt(j.ID, 10)+"/")
				return
			}
			if !domain.IsValidation(err) {
				renderDomainError(c, err)
				return
			}
			errs = domain.FieldErrorsOf(err)
		}
		s.Error("There was an error saving your journal.")
	}

	cards, err := svc.RecentCards(ctx)
	if err != nil {
		renderDomainError(c, err)
		return
	}
	render(c, http.StatusOK, "create_journal.html", gin.H{
		"Title":    "Journals",
		"Form":     f,
		"Errors":   errs,
		"Journals": cards,
	})
}

// JournalDetail handles GET /map/:id/.
func (h *Handler) JournalDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		notFound(c)
		return
	}
	svc := h.journals(c)
	j, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		renderDomainError(c, err)
		return
	}
	render(c, http.StatusOK, "journal_detail.html", gin.H{
		"Title":    j.Title,
		"Journal":  j,
		"CoverURL": svc.CoverURL(j),
	})
}
