package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"travelbook/internal/catalog"
	"travelbook/internal/domain"
	"travelbook/internal/http/middleware"
	"travelbook/internal/repositories"
	"travelbook/internal/services"
	"travelbook/internal/session"
	"travelbook/internal/storage"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler carries the dependencies shared by every page.
type Handler struct {
	DB         *sql.DB
	Driver     string
	Catalog    catalog.Catalog
	Media      storage.MediaStore
	Now        services.Clock
	BcryptCost int
}

func NewHandler(db *sql.DB, driver string, cat catalog.Catalog, media storage.MediaStore) *Handler {
	return &Handler{DB: db, Driver: driver, Catalog: cat, Media: media}
}

func (h *Handler) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  repositories.BookingRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
		Now:       h.Now,
	}
}

func (h *Handler) journals(c *gin.Context) services.JournalService {
	return services.JournalService{
		Journals:  repositories.JournalRepository{DB: h.DB},
		Media:     h.Media,
		RequestID: middleware.GetRequestID(c),
		Now:       h.Now,
	}
}

func (h *Handler) auth(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:      repositories.UserRepository{DB: h.DB},
		RequestID:  middleware.GetRequestID(c),
		Now:        h.Now,
		BcryptCost: h.BcryptCost,
	}
}

func (h *Handler) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Bookings:  repositories.BookingRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
		Now:       h.Now,
	}
}

// Users resolves session user ids for the LoadUser middleware.
func (h *Handler) Users() middleware.UserLoader {
	return services.AuthService{Users: repositories.UserRepository{DB: h.DB}}
}

// currentUser is only valid behind RequireLogin.
func currentUser(c *gin.Context) domain.CurrentUser {
	u, _ := middleware.CurrentUser(c)
	return u
}

func saveSession(c *gin.Context) {
	if err := session.Save(c); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "session", "save_failed", "err", err)
	}
}

// render adds the layout data, drains queued flashes and writes the page.
func render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if u, ok := middleware.CurrentUser(c); ok {
		data["User"] = &u
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = domain.FieldErrors{}
	}
	data["Flashes"] = session.From(c).PopFlashes()
	data["RequestID"] = middleware.GetRequestID(c)
	saveSession(c)
	c.HTML(status, page, data)
}

func redirect(c *gin.Context, location string) {
	saveSession(c)
	c.Redirect(http.StatusFound, location)
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func confirmPath(id int64) string {
	return "/confirm/" + strconv.FormatInt(id, 10) + "/"
}
