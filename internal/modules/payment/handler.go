package payment

import (
	"errors"
	"net/http"
	"strconv"

	"creatortrust/internal/domain"
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
	group := protected.Group("/payments")
	{
		group.POST("/escrow", h.Escrow)
		group.POST("/:id/release", h.Release)
		group.GET("/history", h.History)
	}
}

func (h *Handler) Escrow(c *gin.Context) {
	var req EscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "campaign_id is required")
		return
	}

	result, err := h.service.Escrow(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "ESCROW_FAILED", "Failed to escrow payment")
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) Release(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment ID")
		return
	}

	p, err := h.service.Release(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err, "RELEASE_FAILED", "Failed to release payment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) History(c *gin.Context) {
	role := domain.Role(c.GetString("role"))

	history, err := h.service.History(c.Request.Context(), c.GetInt64("user_id"), role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "HISTORY_FAILED", "Failed to load payment history")
		return
	}

	response.Success(c, http.StatusOK, history)
}

func (h *Handler) writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
	case errors.Is(err, ErrCampaignNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
	case errors.Is(err, ErrBrandProfileRequired):
		response.Error(c, http.StatusNotFound, "PROFILE_REQUIRED", "Brand profile not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to manage this payment")
	case errors.Is(err, ErrAlreadyEscrowed):
		response.Error(c, http.StatusBadRequest, "ALREADY_ESCROWED", "Campaign already has a funded payment")
	case errors.Is(err, ErrNotEscrowed):
		response.Error(c, http.StatusBadRequest, "NOT_ESCROWED", "Payment is not in escrow")
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
