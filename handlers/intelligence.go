package handlers

import (
	"net/http"

	"servana/models"
	"servana/services/catalog"
	"servana/services/matching"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntelligenceHandler exposes the request-intake endpoints: classification,
// follow-up questions and provider matching.
type IntelligenceHandler struct {
	Classifier catalog.Classifier
	Catalog    *catalog.Catalog
	Matcher    matching.MatchingService
	// Backend names the active classifier backend for the health endpoint.
	Backend string
}

type classifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyHandler handles POST /api/ai/classify.
func (h *IntelligenceHandler) ClassifyHandler(c *gin.Context) {
	logger := getLogger(c)

	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Classifier.Classify(c.Request.Context(), req.Text)
	if err != nil {
		logger.Error("Classification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Classification failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

type followUpsRequest struct {
	CategoryID string         `json:"category_id" binding:"required"`
	Answers    map[string]any `json:"answers"`
}

// FollowUpsHandler handles POST /api/ai/followups.
func (h *IntelligenceHandler) FollowUpsHandler(c *gin.Context) {
	var req followUpsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Catalog.FollowUps(req.CategoryID, req.Answers))
}

type matchRequest struct {
	CategoryID string           `json:"category_id" binding:"required"`
	Spec       map[string]any   `json:"spec"`
	Location   *models.Location `json:"location"`
}

// MatchHandler handles POST /api/ai/match.
func (h *IntelligenceHandler) MatchHandler(c *gin.Context) {
	logger := getLogger(c)

	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Matcher.Match(c.Request.Context(), req.CategoryID, req.Spec, req.Location)
	if err != nil {
		logger.Error("Matching failed", zap.String("categoryID", req.CategoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Matching failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// AIHealthHandler handles GET /api/ai/health.
func (h *IntelligenceHandler) AIHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"backend":    h.Backend,
		"categories": len(h.Catalog.Categories()),
	})
}
