package creator

import (
	"errors"
	"net/http"
	"strconv"

	"creatortrust/internal/middleware"
	"creatortrust/internal/pkg/response"
	"creatortrust/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	group := api.Group("/creators")
	{
		group.GET("/profile/:userId", h.GetProfile)
		group.GET("/search", h.Search)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/creators")
	group.Use(middleware.CreatorOnly())
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
		response.Error(c, http.StatusInternalServerError, "PROFILE_SAVE_FAILED", "Failed to save creator profile")
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
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Creator profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PROFILE_FETCH_FAILED", "Failed to load creator profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) Search(c *gin.Context) {
	minFollowers, _ := strconv.Atoi(c.Query("min_followers"))

	filters := repository.SearchFilters{
		Niche:        c.Query("niche"),
		MinFollowers: minFollowers,
		Platform:     c.Query("platform"),
		Location:     c.Query("location"),
	}

	profiles, err := h.service.Search(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search creators")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"creators": profiles})
}

func (h *Handler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetDashboard(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Creator profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DASHBOARD_FAILED", "Failed to load dashboard")
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}
