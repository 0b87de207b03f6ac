package brand

import (
	"errors"
	"net/http"
	"strconv"

	"creatortrust/internal/middleware"
	"creatortrust/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/brands/profile/:userId", h.GetProfile)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/brands")
	group.Use(middleware.BrandOnly())
	{
		group.POST("/profile", h.UpsertProfile)
		group.GET("/dashboard", h.GetDashboard)
	}
}

func (h *Handler) UpsertProfile(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	profile, err := h.service.UpsertProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PROFILE_SAVE_FAILED", "Failed to save brand profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	profile, err := h.service.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Brand profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PROFILE_FETCH_FAILED", "Failed to load brand profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetDashboard(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Brand profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DASHBOARD_FAILED", "Failed to load dashboard")
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}
