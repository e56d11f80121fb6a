package handlers

import (
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/forms"
	"travelbook/internal/http/middleware"
	"travelbook/internal/session"

	"github.com/gin-gonic/gin"
)

const afterLoginPath = "/plantrip/"

// RegisterPage handles GET and POST /register/.
func (h *Handler) RegisterPage(c *gin.Context) {
	s := session.From(c)
	if _, ok := middleware.CurrentUser(c); ok {
		s.Info("You are already logged in.")
		redirect(c, afterLoginPath)
		return
	}

	var f forms.RegisterForm
	if c.Request.Method == http.MethodPost {
		_ = c.ShouldBind(&f)
		u, err := h.auth(c).Register(c.Request.Context(), &f)
		if err == nil {
			s.Login(u.ID)
			s.Success("Account created successfully!")
			redirect(c, afterLoginPath)
			return
		}
		if !domain.IsValidation(err) {
			renderDomainError(c, err)
			return
		}
		s.Error("Please correct the errors below.")
		render(c, http.StatusOK, "register.html", gin.H{
			"Title":  "Register",
			"Form":   f,
			"Errors": domain.FieldErrorsOf(err),
		})
		return
	}
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Register", "Form": f})
}

// LoginPage handles GET and POST /login/.
func (h *Handler) LoginPage(c *gin.Context) {
	next := middleware.SafeNext(c.Query("next"), afterLoginPath)
	if _, ok := middleware.CurrentUser(c); ok {
		redirect(c, afterLoginPath)
		return
	}

	var f forms.LoginForm
	if c.Request.Method == http.MethodPost {
		_ = c.ShouldBind(&f)
		next = middleware.SafeNext(c.PostForm("next"), afterLoginPath)
		u, err := h.auth(c).Authenticate(c.Request.Context(), &f)
		if err == nil {
			s := session.From(c)
			s.Login(u.ID)
			s.Success("Welcome back, " + u.Username + "!")
			redirect(c, next)
			return
		}
		if !domain.IsValidation(err) {
			renderDomainError(c, err)
			return
		}
		session.From(c).Error("Invalid username or password.")
		f.Password = ""
		render(c, http.StatusOK, "login.html", gin.H{
			"Title":  "Log in",
			"Form":   f,
			"Next":   next,
			"Errors": domain.FieldErrorsOf(err),
		})
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Log in", "Form": f, "Next": next})
}

// Logout handles GET and POST /logout/.
func (h *Handler) Logout(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		s := session.From(c)
		s.Logout()
		s.Info("You have been logged out.")
	}
	redirect(c, "/")
}
