package analytics

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

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/analytics")
	{
		group.GET("/creator", h.Creator)
		group.GET("/brand", h.Brand)
		group.GET("/campaign/:id", h.Campaign)
	}
}

func (h *Handler) Creator(c *gin.Context) {
	report, err := h.service.CreatorReport(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) Brand(c *gin.Context) {
	report, err := h.service.BrandReport(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) Campaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return
	}

	report, err := h.service.CampaignReport(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCampaignNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
	case errors.Is(err, ErrProfileRequired):
		response.Error(c, http.StatusNotFound, "PROFILE_REQUIRED", "Profile not found. Please create a profile first.")
	default:
		response.Error(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to build analytics report")
	}
}
