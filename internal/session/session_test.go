package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestManagerRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour, false)
	in := Data{UserID: 4, PendingBookingID: 11, Flashes: []Flash{{Level: LevelInfo, Text: "hi"}}}

	tok, err := m.Encode(in, time.Now())
	require.NoError(t, err)

	out, err := m.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestManagerRejectsForeignSignature(t *testing.T) {
	tok, err := NewManager("one", time.Hour, false).Encode(Data{UserID: 1}, time.Now())
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour, false).Decode(tok)
	assert.Error(t, err)
}

func TestManagerRejectsExpired(t *testing.T) {
	m := NewManager("secret", time.Minute, false)
	tok, err := m.Encode(Data{UserID: 1}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = m.Decode(tok)
	assert.Error(t, err)
}

func TestMiddlewareSaveAndReload(t *testing.T) {
	m := NewManager("secret", time.Hour, false)
	r := gin.New()
	r.Use(Middleware(m))
	r.GET("/set", func(c *gin.Context) {
		s := From(c)
		s.Login(9)
		s.SetPendingBookingID(3)
		s.Success("saved")
		require.NoError(t, Save(c))
		c.Status(http.StatusNoContent)
	})
	r.GET("/get", func(c *gin.Context) {
		s := From(c)
		flashes := s.PopFlashes()
		require.NoError(t, Save(c))
		c.JSON(http.StatusOK, gin.H{"uid": s.UserID(), "pending": s.PendingBookingID(), "flashes": len(flashes)})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"uid":9,"pending":3,"flashes":1}`, w.Body.String())
}

func TestMiddlewareIgnoresTamperedCookie(t *testing.T) {
	m := NewManager("secret", time.Hour, false)
	r := gin.New()
	r.Use(Middleware(m))
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": From(c).UserID()})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "not-a-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"uid":0}`, w.Body.String())
}

func TestLogoutKeepsFlashes(t *testing.T) {
	s := &Session{}
	s.Login(5)
	s.SetPendingBookingID(2)
	s.Info("bye")
	s.Logout()

	assert.Equal(t, int64(0), s.UserID())
	assert.Equal(t, int64(0), s.PendingBookingID())
	assert.Len(t, s.PopFlashes(), 1)
}
