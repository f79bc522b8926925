// Package server exposes the session over a small JSON API so presentation
// frontends (web UI, dashboard) can read computed metrics and write discrete
// field edits.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitalis/internal/session"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	session   *session.Session
	tokenHash string // bcrypt hash of the API token; empty leaves the API open
	log       *zap.Logger
}

// New builds a handler around the session.
func New(s *session.Session, tokenHash string, log *zap.Logger) *Handler {
	return &Handler{session: s, tokenHash: tokenHash, log: log}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// Router builds the gin engine with logging, recovery, and all routes.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(h.requestLogger(), gin.Recovery())
	h.registerRoutes(router)
	return router
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api", h.authMiddleware())
	api.GET("/snapshot", h.getSnapshot)
	api.GET("/metrics", h.getMetrics)
	api.GET("/content", h.getContent)
	api.GET("/vo2-history", h.getVO2History)
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.GET("/assessment", h.getAssessment)
	api.PUT("/assessment/:domain", h.putAssessment)
}
