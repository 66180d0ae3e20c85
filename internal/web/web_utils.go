package web

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// getBaseTemplateData builds the template data shared by all pages.
// Draining flashes here means every rendered page consumes pending
// notifications exactly once.
func (s *WebServer) getBaseTemplateData(c *gin.Context, sess *sessions.Session, title string) TemplateData {
	return TemplateData{
		Title:      title,
		AppVersion: s.Config.AppVersion,
		LoggedIn:   isAuthenticated(sess),
		Flashes:    s.takeFlashes(c, sess),
	}
}

// renderTemplate executes page over base.html from the embedded template set
func (s *WebServer) renderTemplate(c *gin.Context, page string, data any) {
	tmpl, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+page)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Template Error", err.Error())
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		s.renderError(c, http.StatusInternalServerError, "Template Error", err.Error())
	}
}
