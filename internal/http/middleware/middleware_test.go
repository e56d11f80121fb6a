package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travelbook/internal/http/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryRendersErrorPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tmpl, err := views.Load()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
	assert.Contains(t, w.Body.String(), "req-123")
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get("X-Request-ID")
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/bookings/", SafeNext("/bookings/", "/plantrip/"))
	assert.Equal(t, "/plantrip/", SafeNext("", "/plantrip/"))
	assert.Equal(t, "/plantrip/", SafeNext("//evil.example", "/plantrip/"))
	assert.Equal(t, "/plantrip/", SafeNext("https://evil.example/", "/plantrip/"))
	assert.Equal(t, "/plantrip/", SafeNext("/\\evil.example", "/plantrip/"))
}
