package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitalis/internal/session"
)

// getSnapshot returns the whole observable state for today: profile,
// answers, derived metrics, content selection, and the VO2 series.
// GET /api/snapshot.
func (h *Handler) getSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Snapshot(c.Request.Context()))
}

// getMetrics returns the derived metrics only.
// GET /api/metrics.
func (h *Handler) getMetrics(c *gin.Context) {
	snap := h.session.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, snap.Metrics)
}

// getContent returns today's verse and message selection only.
// GET /api/content.
func (h *Handler) getContent(c *gin.Context) {
	snap := h.session.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, snap.Content)
}

// getVO2History returns the full VO2 time series, oldest first, without
// triggering a recomputation.
// GET /api/vo2-history.
func (h *Handler) getVO2History(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.History(c.Request.Context()))
}

// getProfile returns the current profile.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Profile())
}

// patchProfile applies a partial profile edit and returns the recomputed
// snapshot. Only provided fields change; unknown JSON fields are ignored;
// invalid enum values get a 400 and change nothing.
// PATCH /api/profile.
func (h *Handler) patchProfile(c *gin.Context) {
	var patch session.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.session.UpdateProfile(c.Request.Context(), patch)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

// getAssessment returns the current answers for all 21 domains.
// GET /api/assessment.
func (h *Handler) getAssessment(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Answers())
}

// putAssessment records one answer and returns the recomputed snapshot.
// PUT /api/assessment/:domain with body {"score": n}, n in [1,5].
func (h *Handler) putAssessment(c *gin.Context) {
	var body struct {
		Score int `json:"score"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.session.SetAnswer(c.Request.Context(), c.Param("domain"), body.Score)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}
