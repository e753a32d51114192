// Package session persists the authenticated identity in a browser
// cookie so an employee stays signed in across visits. The cookie is a
// convenience cache only: it carries no signature, and every mutating
// operation re-checks the employee against the data platform.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zanda/offday-portal/internal/model"
)

// Manager reads and writes the identity cookie.
type Manager struct {
	name string
	ttl  time.Duration
}

// NewManager builds a Manager for the given cookie name and lifetime.
func NewManager(name string, ttl time.Duration) *Manager {
	if name == "" {
		name = "currentUser"
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Manager{name: name, ttl: ttl}
}

// Identity decodes the identity cookie. An absent, undecodable or
// incomplete cookie leaves the visitor anonymous; no error is surfaced.
func (m *Manager) Identity(c echo.Context) (*model.Identity, bool) {
	ck, err := c.Cookie(m.name)
	if err != nil || ck.Value == "" {
		return nil, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil, false
	}
	var id model.Identity
	if err := json.Unmarshal(raw, &id); err != nil || id.ID == 0 {
		return nil, false
	}
	return &id, true
}

// Save writes the identity cookie after a successful login. Last writer
// wins across tabs; there is no conflict detection.
func (m *Manager) Save(c echo.Context, id model.Identity) {
	raw, err := json.Marshal(id)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     m.name,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the identity cookie on sign-out.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
