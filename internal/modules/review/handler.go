package review

import (
	"errors"
	"net/http"
	"strconv"

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
	api.GET("/reviews/creator/:creatorId", h.ListByCreator)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/reviews", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "rating must be between 1 and 5")
		return
	}

	r, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCampaignNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
		case errors.Is(err, ErrBrandProfileRequired):
			response.Error(c, http.StatusNotFound, "PROFILE_REQUIRED", "Brand profile not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to review this campaign")
		case errors.Is(err, ErrNoCreator):
			response.Error(c, http.StatusBadRequest, "NO_CREATOR", "Campaign has no assigned creator")
		case errors.Is(err, ErrNotCompleted):
			response.Error(c, http.StatusBadRequest, "NOT_COMPLETED", "Campaign is not completed yet")
		default:
			response.Error(c, http.StatusInternalServerError, "REVIEW_CREATE_FAILED", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": r})
}

func (h *Handler) ListByCreator(c *gin.Context) {
	creatorID, err := strconv.ParseInt(c.Param("creatorId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid creator ID")
		return
	}

	reviews, err := h.service.ListByCreator(c.Request.Context(), creatorID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REVIEW_LIST_FAILED", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}
