package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-miniblog/internal/database"
)

// showEntries renders the entry list, newest first
func (s *WebServer) showEntries(c *gin.Context) {
	sess := s.getSession(c)

	conn, err := s.requestConn(c).Get(c.Request.Context())
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Database Error", err.Error())
		return
	}

	entries, err := database.GetAllEntries(c.Request.Context(), conn)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Database Error", err.Error())
		return
	}

	data := EntriesPageData{
		TemplateData: s.getBaseTemplateData(c, sess, "Entries"),
		Entries:      entries,
	}
	s.renderTemplate(c, "show_entries.html", data)
}

// addEntry stores a new entry for the logged-in admin
func (s *WebServer) addEntry(c *gin.Context) {
	sess := s.getSession(c)
	if !isAuthenticated(sess) {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	// Both fields must be submitted; empty values are allowed
	title, titleOK := c.GetPostForm("title")
	text, textOK := c.GetPostForm("text")
	if !titleOK || !textOK {
		c.String(http.StatusBadRequest, "title and text fields are required")
		c.Abort()
		return
	}

	conn, err := s.requestConn(c).Get(c.Request.Context())
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Database Error", err.Error())
		return
	}
	if err := database.InsertEntry(c.Request.Context(), conn, title, text); err != nil {
		s.renderError(c, http.StatusInternalServerError, "Database Error", err.Error())
		return
	}

	sess.AddFlash("New entry was successfully posted")
	s.saveSession(c, sess)
	c.Redirect(http.StatusFound, "/")
}
