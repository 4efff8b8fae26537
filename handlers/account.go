package handlers

import (
	"errors"
	"net/http"

	"servana/models"
	"servana/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler exposes registration, sign-in and profile endpoints.
type AccountHandler struct {
	Service account.AccountService
}

type registerRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=6"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
	Bio        string   `json:"bio"`
	SkillTags  []string `json:"skill_tags"`
	HourlyRate float64  `json:"hourly_rate"`
}

// RegisterHandler handles POST /api/:role/register where role is "customer"
// or "provider".
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile := &models.Profile{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Address:    req.Address,
		Bio:        req.Bio,
		Role:       c.Param("role"),
		SkillTags:  req.SkillTags,
		HourlyRate: req.HourlyRate,
	}

	resp, err := h.Service.Register(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInHandler handles POST /api/customers/login and /api/providers/login.
func (h *AccountHandler) SignInHandler(c *gin.Context) {
	logger := getLogger(c)

	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler handles POST /api/auth/signout.
func (h *AccountHandler) SignOutHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.Service.SignOut(c.Request.Context(), userID); err != nil {
		logger.Error("Sign-out failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetProfileHandler handles GET /api/profiles/:id. The literal id "me"
// resolves to the authenticated user.
func (h *AccountHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	profileID := c.Param("id")
	if profileID == "me" {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		profileID = userID
	}

	profile, err := h.Service.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		logger.Error("Failed to get profile", zap.String("profileID", profileID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PATCH /api/profiles/:id. Users may only update
// their own profile.
func (h *AccountHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	profileID := c.Param("id")
	if profileID != userID && profileID != "me" {
		c.JSON(http.StatusForbidden, gin.H{"error": "You may only update your own profile"})
		return
	}

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, account.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update profile", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListProfilesHandler handles GET /api/profiles.
func (h *AccountHandler) ListProfilesHandler(c *gin.Context) {
	logger := getLogger(c)

	profiles, err := h.Service.ListProfiles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list profiles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list profiles"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// ListProvidersHandler handles GET /api/providers, with an optional ?service=
// skill tag filter.
func (h *AccountHandler) ListProvidersHandler(c *gin.Context) {
	logger := getLogger(c)

	providers, err := h.Service.ListProviders(c.Request.Context(), c.Query("service"))
	if err != nil {
		logger.Error("Failed to list providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list providers"})
		return
	}
	c.JSON(http.StatusOK, providers)
}
