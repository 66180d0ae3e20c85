package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// loginPage displays the login form
func (s *WebServer) loginPage(c *gin.Context) {
	sess := s.getSession(c)
	data := LoginPageData{
		TemplateData: s.getBaseTemplateData(c, sess, "Login"),
	}
	s.renderTemplate(c, "login.html", data)
}

// loginSubmit processes login form submission
func (s *WebServer) loginSubmit(c *gin.Context) {
	sess := s.getSession(c)
	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := Authenticate(username, password, s.Config); err != nil {
		switch {
		case errors.Is(err, ErrInvalidUsername):
			s.renderLoginError(c, "Invalid username")
		case errors.Is(err, ErrInvalidPassword):
			s.renderLoginError(c, "Invalid password")
		default:
			s.renderLoginError(c, "Login error. Please try again.")
		}
		return
	}

	sess.Values[sessionKeyLoggedIn] = true
	sess.AddFlash("You were logged in")
	s.saveSession(c, sess)
	c.Redirect(http.StatusFound, "/")
}

// logout clears the authenticated flag and redirects home.
// Harmless no-op for anonymous visitors.
func (s *WebServer) logout(c *gin.Context) {
	sess := s.getSession(c)
	logOut(sess)
	sess.AddFlash("You were logged out")
	s.saveSession(c, sess)
	c.Redirect(http.StatusFound, "/")
}

// renderLoginError renders login page with error
func (s *WebServer) renderLoginError(c *gin.Context, errorMsg string) {
	sess := s.getSession(c)
	data := LoginPageData{
		TemplateData: s.getBaseTemplateData(c, sess, "Login"),
		Error:        errorMsg,
	}
	s.renderTemplate(c, "login.html", data)
}
