package sessions

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	cookieName = "glowreview_session"

	keyUserID   = "user_id"
	keyEmail    = "email"
	keyFullName = "full_name"
)

// Principal is the identity carried by an authenticated session.
// It is a fixed set of typed fields, never an open-ended claim bag.
type Principal struct {
	UserID   string
	Email    string
	FullName string
}

// Manager issues and reads cookie-backed authenticated sessions.
type Manager struct {
	store *sessions.CookieStore
}

// returns a manager backed by a cookie store
func NewManager(secret string, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secret))

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600, // 1 hour
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}
}

// establishes an authenticated session for the principal
func (m *Manager) Issue(c *gin.Context, p Principal) error {
	session, err := m.store.Get(c.Request, cookieName)
	if err != nil {
		// a stale or tampered cookie decodes with an error but still
		// yields a fresh session, which is what we want here
		_ = err
	}

	session.Values[keyUserID] = p.UserID
	session.Values[keyEmail] = p.Email
	session.Values[keyFullName] = p.FullName

	return session.Save(c.Request, c.Writer)
}

// returns the principal bound to the current request, if any
func (m *Manager) Current(c *gin.Context) (*Principal, bool) {
	session, err := m.store.Get(c.Request, cookieName)
	if err != nil {
		return nil, false
	}

	userID, ok := session.Values[keyUserID].(string)
	if !ok || userID == "" {
		return nil, false
	}

	email, _ := session.Values[keyEmail].(string)
	fullName, _ := session.Values[keyFullName].(string)

	return &Principal{
		UserID:   userID,
		Email:    email,
		FullName: fullName,
	}, true
}

// invalidates the current session; clearing an absent session is a no-op
func (m *Manager) Clear(c *gin.Context) error {
	session, err := m.store.Get(c.Request, cookieName)
	if err != nil {
		// nothing recoverable to clear
		return nil
	}

	session.Values = map[any]any{}
	session.Options.MaxAge = -1

	return session.Save(c.Request, c.Writer)
}
