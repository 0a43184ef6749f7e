package middleware

import (
	"net/http"
	"strings"
	"time"

	"ahudio-admin-server/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "RequestID"

// BodyTooLargeMessage is the error text sent for bodies over the configured ceiling
const BodyTooLargeMessage = "Request body too large"

var responseHeaders = [][2]string{
	{"X-Frame-Options", "DENY"},
	{"Content-Security-Policy", "default-src 'self'"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Referrer-Policy", "no-referrer"},
}

var corsHeaders = [][2]string{
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS"},
	{"Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID"},
	{"Access-Control-Expose-Headers", "Content-Length, X-Request-ID"},
}

// SecurityHeadersMiddleware sets the browser hardening headers. Responses to bearer
// requests carry admin data and are never cached; HTTPS responses get HSTS.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range responseHeaders {
			c.Header(h[0], h[1])
		}
		if c.GetHeader("Authorization") != "" {
			c.Header("Cache-Control", "no-store")
		}
		if requestIsHTTPS(c.Request) {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}

// HTTPSRedirectMiddleware redirects plain HTTP requests to the same URL over HTTPS
func HTTPSRedirectMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if requestIsHTTPS(c.Request) {
			c.Next()
			return
		}
		c.Redirect(http.StatusPermanentRedirect, "https://"+c.Request.Host+c.Request.URL.RequestURI())
		c.Abort()
	}
}

// requestIsHTTPS also trusts X-Forwarded-Proto from the TLS-terminating proxy
func requestIsHTTPS(req *http.Request) bool {
	return req.TLS != nil || strings.EqualFold(req.Header.Get("X-Forwarded-Proto"), "https")
}

// CORSMiddleware lets the admin panel and the public site call the API from any origin.
// Auth travels in the Authorization header, so credentialed CORS is not offered.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range corsHeaders {
			c.Header(h[0], h[1])
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Max-Age", "600")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestIDMiddleware keeps the caller's X-Request-ID or assigns a new uuid
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(RequestIDKey, rid)
		c.Header("X-Request-ID", rid)
		c.Next()
	}
}

// RequestSizeLimitMiddleware rejects declared bodies over limit up front and caps
// the rest with http.MaxBytesReader
func RequestSizeLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": BodyTooLargeMessage})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// AuditLogMiddleware writes one line per request with the acting admin. Health probes
// are skipped. Rejected requests log at warn level and server errors at error level.
func AuditLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		user := c.GetString(UsernameKey)
		if user == "" {
			user = "anonymous"
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("user", user),
			zap.String("client_ip", c.ClientIP()),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("Audit log", fields...)
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			logger.Warn("Audit log: access denied", fields...)
		default:
			logger.Info("Audit log", fields...)
		}
	}
}
