package router

import (
	"net/http"
	"time"

	"ahudio-admin-server/internal/handlers"
	"ahudio-admin-server/pkg/logger"
	"ahudio-admin-server/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is the body allowance on top of the upload ceiling for the multipart framing
const multipartOverhead = 64 << 10

// Handlers bundles every HTTP handler the router dispatches to
type Handlers struct {
	Auth          *handlers.AuthHandler
	Messages      *handlers.MessageHandler
	Emails        *handlers.EmailHandler
	PhoneContacts *handlers.PhoneContactHandler
	About         *handlers.AboutHandler
	Assistants    *handlers.AssistantHandler
	Phones        *handlers.PhoneHandler
	Dashboard     *handlers.DashboardHandler
}

// Options tune the middleware chain
type Options struct {
	Version        string
	MaxUploadBytes int64
	ForceHTTPS     bool
}

type Router struct {
	engine  *gin.Engine
	version string
}

func NewRouter(h Handlers, issuer *middleware.TokenIssuer, opts Options) *Router {
	if issuer == nil {
		panic("token issuer cannot be nil")
	}

	r := &Router{
		engine:  gin.New(),
		version: opts.Version,
	}

	r.engine.HandleMethodNotAllowed = true
	r.engine.Use(gin.Recovery())
	if opts.ForceHTTPS {
		r.engine.Use(middleware.HTTPSRedirectMiddleware())
	}
	r.engine.Use(
		middleware.RequestIDMiddleware(),
		middleware.AuditLogMiddleware(),
		middleware.SecurityHeadersMiddleware(),
		middleware.CORSMiddleware(),
	)
	if opts.MaxUploadBytes > 0 {
		r.engine.Use(middleware.RequestSizeLimitMiddleware(opts.MaxUploadBytes + multipartOverhead))
	}

	r.engine.GET("/", r.handleRoot)
	r.engine.GET("/health", r.handleHealth)
	r.engine.NoRoute(r.handleNotFound)
	r.engine.NoMethod(r.handleMethodNotAllowed)

	// Public routes
	public := r.engine.Group("/")
	{
		public.POST("/contactUs/", h.Messages.CreateMessage)
		public.POST("/auth/login", h.Auth.Login)
		public.POST("/login/", h.Auth.Login)
		public.GET("/about/", h.About.Get)
		public.GET("/phone-contacts/", h.PhoneContacts.List)
		public.GET("/phone-contacts/:id", h.PhoneContacts.Get)
		public.GET("/phones/", h.Phones.List)
		public.GET("/phones/:id", h.Phones.Get)
		public.GET("/public/about", h.About.PublicAbout)
		public.GET("/public/contact-status", h.About.ContactStatus)
	}

	// Token-gated routes
	protected := r.engine.Group("/")
	protected.Use(middleware.AuthMiddleware(issuer))
	{
		protected.GET("/messages/", h.Messages.ListMessages)

		protected.PUT("/about/", h.About.Update)
		protected.POST("/about/upload", h.About.Upload)

		protected.GET("/emails/", h.Emails.List)
		protected.POST("/emails/", h.Emails.Create)
		protected.GET("/emails/:id", h.Emails.Get)
		protected.PUT("/emails/:id", h.Emails.Update)
		protected.DELETE("/emails/:id", h.Emails.Delete)

		protected.POST("/phone-contacts/", h.PhoneContacts.Create)
		protected.PUT("/phone-contacts/:id", h.PhoneContacts.Update)
		protected.DELETE("/phone-contacts/:id", h.PhoneContacts.Delete)

		protected.POST("/phones/", h.Phones.Create)
		protected.POST("/phones/sync", h.Phones.Sync)
		protected.PATCH("/phones/:id", h.Phones.Update)
		protected.DELETE("/phones/:id", h.Phones.Delete)

		protected.GET("/assistants/", h.Assistants.List)
		protected.POST("/assistants/", h.Assistants.Create)
		protected.POST("/assistants/sync", h.Assistants.Sync)
		protected.GET("/assistants/:id", h.Assistants.Get)
		protected.PATCH("/assistants/:id", h.Assistants.Update)
		protected.DELETE("/assistants/:id", h.Assistants.Delete)

		protected.GET("/vapi/voice-types", h.Assistants.VoiceTypes)
		protected.GET("/vapi/behavior-types", h.Assistants.BehaviorTypes)

		protected.GET("/dashboard/overview", h.Dashboard.Overview)
		protected.GET("/dashboard/calls", h.Dashboard.Calls)
		protected.GET("/dashboard/calls/:id", h.Dashboard.Call)
		protected.GET("/dashboard/voices", h.Dashboard.Voices)
		protected.GET("/dashboard/assistant/settings", h.Dashboard.GetSettings)
		protected.PATCH("/dashboard/assistant/settings", h.Dashboard.UpdateSettings)
		protected.GET("/dashboard/assistant/defaults", h.About.GetDefaults)
		protected.PUT("/dashboard/assistant/defaults", h.About.UpdateDefaults)

		protected.GET("/stats/dashboard", h.Dashboard.Stats)
	}

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

func (r *Router) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Ahudio admin API is running"})
}

func (r *Router) handleHealth(c *gin.Context) {
	logger.Info("Health check endpoint called")
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC(),
		"version": r.version,
		"service": "ahudio-admin-server",
	})
}

func (r *Router) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

func (r *Router) handleMethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
