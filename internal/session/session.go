// Package session keeps per-browser conversational state (logged-in user,
// pending booking, flash messages) in a signed cookie.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	contextKey        = "session"
	DefaultCookieName = "travelbook_session"
)

const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelError   = "error"
)

type Flash struct {
	Level string `json:"l"`
	Text  string `json:"t"`
}

// Data is what survives between requests.
type Data struct {
	UserID           int64   `json:"uid,omitempty"`
	PendingBookingID int64   `json:"pbid,omitempty"`
	Flashes          []Flash `json:"fl,omitempty"`
}

type claims struct {
	Data
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies.
type Manager struct {
	Secret     []byte
	TTL        time.Duration
	CookieName string
	Secure     bool
}

func NewManager(secret string, ttl time.Duration, secure bool) Manager {
	return Manager{
		Secret:     []byte(secret),
		TTL:        ttl,
		CookieName: DefaultCookieName,
		Secure:     secure,
	}
}

func (m Manager) Encode(d Data, now time.Time) (string, error) {
	c := claims{
		Data: d,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.Secret)
}

func (m Manager) Decode(token string) (Data, error) {
	if token == "" {
		return Data{}, errors.New("missing session token")
	}
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Data{}, err
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return Data{}, errors.New("invalid session token")
	}
	return c.Data, nil
}

// Session is the request-scoped view of Data.
type Session struct {
	data  Data
	dirty bool
}

func (s *Session) UserID() int64 { return s.data.UserID }

func (s *Session) Login(userID int64) {
	s.data = Data{UserID: userID, Flashes: s.data.Flashes}
	s.dirty = true
}

// Logout drops the user and any pending booking, keeping queued flashes.
func (s *Session) Logout() {
	s.data = Data{Flashes: s.data.Flashes}
	s.dirty = true
}

func (s *Session) PendingBookingID() int64 { return s.data.PendingBookingID }

func (s *Session) SetPendingBookingID(id int64) {
	s.data.PendingBookingID = id
	s.dirty = true
}

func (s *Session) ClearPendingBookingID() {
	if s.data.PendingBookingID != 0 {
		s.data.PendingBookingID = 0
		s.dirty = true
	}
}

func (s *Session) AddFlash(level, text string) {
	s.data.Flashes = append(s.data.Flashes, Flash{Level: level, Text: text})
	s.dirty = true
}

func (s *Session) Info(text string)    { s.AddFlash(LevelInfo, text) }
func (s *Session) Success(text string) { s.AddFlash(LevelSuccess, text) }
func (s *Session) Error(text string)   { s.AddFlash(LevelError, text) }

// PopFlashes returns and clears queued messages.
func (s *Session) PopFlashes() []Flash {
	out := s.data.Flashes
	if len(out) > 0 {
		s.data.Flashes = nil
		s.dirty = true
	}
	return out
}

// Middleware loads the session cookie; a bad or expired cookie is an empty session.
func Middleware(m Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := &Session{}
		if raw, err := c.Cookie(m.CookieName); err == nil {
			if d, err := m.Decode(raw); err == nil {
				s.data = d
			} else {
				s.dirty = true
			}
		}
		c.Set(contextKey, s)
		c.Set(managerKey, m)
		c.Next()
	}
}

const managerKey = "session_manager"

// From returns the request session, or an empty one outside the middleware.
func From(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := &Session{}
	c.Set(contextKey, s)
	return s
}

// Save writes the cookie when the session changed. Call before writing the response body.
func Save(c *gin.Context) error {
	s := From(c)
	if !s.dirty {
		return nil
	}
	v, ok := c.Get(managerKey)
	if !ok {
		return errors.New("session manager not configured")
	}
	m := v.(Manager)

	cookie := &http.Cookie{
		Name:     m.CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.data.UserID == 0 && s.data.PendingBookingID == 0 && len(s.data.Flashes) == 0 {
		cookie.MaxAge = -1
	} else {
		token, err := m.Encode(s.data, time.Now())
		if err != nil {
			return err
		}
		cookie.Value = token
		cookie.MaxAge = int(m.TTL.Seconds())
	}
	http.SetCookie(c.Writer, cookie)
	s.dirty = false
	return nil
}
