package web

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-miniblog/internal/config"
	"github.com/gorilla/sessions"
)

const sessionName = "miniblog-session"

// session key marking an authenticated admin; absent means anonymous
const sessionKeyLoggedIn = "logged_in"

// Authentication errors, rendered inline on the login form
var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
)

// Authenticate compares the submitted credentials against the static admin
// account from the configuration. Comparison is exact and case-sensitive.
// The username is checked first, so the two failure modes are distinct.
func Authenticate(username, password string, cfg *config.Config) error {
	if username != cfg.AdminUser {
		return ErrInvalidUsername
	}
	if password != cfg.AdminPassword {
		return ErrInvalidPassword
	}
	return nil
}

// getSession retrieves (or creates) the signed cookie session.
// A cookie that fails signature validation yields a fresh anonymous session.
func (s *WebServer) getSession(c *gin.Context) *sessions.Session {
	sess, err := s.store.Get(c.Request, sessionName)
	if err != nil && s.Config.Debug {
		log.Printf("[WEB]: Failed to decode session cookie: %v", err)
	}
	return sess
}

// isAuthenticated reports whether the session carries logged_in = true
func isAuthenticated(sess *sessions.Session) bool {
	v, ok := sess.Values[sessionKeyLoggedIn].(bool)
	return ok && v
}

// logOut removes the logged_in key entirely (not merely sets it false)
func logOut(sess *sessions.Session) {
	delete(sess.Values, sessionKeyLoggedIn)
}

// takeFlashes drains the session's one-time notifications and persists the
// drained state, so each message renders exactly once.
func (s *WebServer) takeFlashes(c *gin.Context, sess *sessions.Session) []string {
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			flashes = append(flashes, msg)
		}
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Printf("[WEB]: Failed to save session after draining flashes: %v", err)
	}
	return flashes
}

// saveSession persists session state to the response cookie
func (s *WebServer) saveSession(c *gin.Context, sess *sessions.Session) {
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Printf("[WEB]: Failed to save session: %v", err)
	}
}
