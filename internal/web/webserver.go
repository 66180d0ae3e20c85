// Package web provides the HTTP server and web interface for go-miniblog
package web

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-miniblog/internal/config"
	"github.com/go-while/go-miniblog/internal/database"
	"github.com/go-while/go-miniblog/internal/models"
	"github.com/gorilla/sessions"
)

//go:embed templates/*.html
var templatesFS embed.FS

// gin context key holding the per-request connection cache
const ctxRequestConn = "reqconn"

// WebServer represents the web server
type WebServer struct {
	DB        *database.Database
	Router    *gin.Engine
	Config    *config.Config
	store     *sessions.CookieStore
	StartTime time.Time // Track server start time for uptime calculations
}

// TemplateData represents common template data
type TemplateData struct {
	Title      string
	AppVersion string
	LoggedIn   bool
	Flashes    []string
}

// EntriesPageData represents data for the entry list page
type EntriesPageData struct {
	TemplateData
	Entries []*models.Entry
}

// LoginPageData represents data for login page
type LoginPageData struct {
	TemplateData
	Error string
}

// NewServer creates a new web server instance
func NewServer(db *database.Database, cfg *config.Config) *WebServer {
	if !cfg.Debug {
		// Set Gin to release mode for production
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Configure Gin to trust reverse proxy headers
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if cfg.Web.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	// Cookie session store signed with the configured secret
	store := sessions.NewCookieStore([]byte(cfg.SecretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Web.SSL,
		SameSite: http.SameSiteLaxMode,
	}

	server := &WebServer{
		DB:        db,
		Router:    router,
		Config:    cfg,
		store:     store,
		StartTime: time.Now(),
	}

	router.Use(server.ApacheLogFormat(), gin.Recovery())
	router.Use(secure.New(secureConfig))
	router.Use(server.RequestConnMiddleware())
	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong (uptime: %s)", time.Since(s.StartTime).Round(time.Second))
	})

	s.Router.GET("/", s.showEntries)
	s.Router.POST("/add", s.addEntry)
	s.Router.GET("/login", s.loginPage)
	s.Router.POST("/login", s.loginSubmit)
	s.Router.GET("/logout", s.logout)
}

// RequestConnMiddleware attaches a lazy per-request database connection to
// the gin context and guarantees it is released on every exit path,
// including panics recovered further up the chain.
func (s *WebServer) RequestConnMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := s.DB.NewRequestConn()
		c.Set(ctxRequestConn, rc)
		defer rc.Release()
		c.Next()
	}
}

// requestConn returns the connection cache installed by RequestConnMiddleware
func (s *WebServer) requestConn(c *gin.Context) *database.RequestConn {
	rc, exists := c.Get(ctxRequestConn)
	if !exists {
		// Route registered outside the middleware chain, should not happen
		panic(errors.New("request connection middleware not installed"))
	}
	return rc.(*database.RequestConn)
}

// renderError writes a plain error response
func (s *WebServer) renderError(c *gin.Context, code int, title, msg string) {
	log.Printf("[WEB]: %s: %s", title, msg)
	c.String(code, "%s", title)
	c.Abort()
}

// Start starts the web server with SSL support if configured
func (s *WebServer) Start() error {
	addr := ":" + strconv.Itoa(s.Config.Web.ListenPort)
	if s.Config.Web.SSL {
		if s.Config.Web.CertFile == "" || s.Config.Web.KeyFile == "" {
			return errors.New("SSL enabled but cert_file or key_file not specified in config")
		}
		log.Printf("Starting HTTPS server on %s", addr)
		return s.Router.RunTLS(addr, s.Config.Web.CertFile, s.Config.Web.KeyFile)
	}
	log.Printf("Starting HTTP server on %s", addr)
	return s.Router.Run(addr)
}

// ApacheLogFormat renders gin request logs in combined log format
func (s *WebServer) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
