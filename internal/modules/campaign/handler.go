package campaign

import (
	"errors"
	"net/http"
	"strconv"

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
	group := api.Group("/campaigns")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/campaigns")
	{
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.GET("/:id/applicants", h.ListApplicants)
		group.POST("/:id/apply", h.Apply)
		group.POST("/:id/assign", h.Assign)
		group.POST("/:id/submit", h.Submit)
		group.POST("/:id/approve", h.Approve)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrBrandProfileRequired) {
			response.Error(c, http.StatusNotFound, "PROFILE_REQUIRED", "Brand profile not found. Please create a profile first.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CAMPAIGN_CREATE_FAILED", "Failed to create campaign")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"campaign": created})
}

func (h *Handler) List(c *gin.Context) {
	budgetMin, _ := strconv.ParseFloat(c.Query("budget_min"), 64)
	budgetMax, _ := strconv.ParseFloat(c.Query("budget_max"), 64)

	filters := repository.ListFilters{
		Status:    c.Query("status"),
		Niche:     c.Query("niche"),
		BudgetMin: budgetMin,
		BudgetMax: budgetMax,
	}

	campaigns, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CAMPAIGN_LIST_FAILED", "Failed to list campaigns")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaigns": campaigns})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := campaignID(c)
	if err != nil {
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CAMPAIGN_FETCH_FAILED", "Failed to load campaign")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := campaignID(c)
	if err != nil {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeLifecycleError(c, err, "CAMPAIGN_UPDATE_FAILED", "Failed to update campaign")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": updated})
}

func (h *Handler) Apply(c *gin.Context) {
	id, err := campaignID(c)
	if err != nil {
		return
	}

	// Body is optional: applying without a pitch message is fine.
	var req ApplyRequest
	_ = c.ShouldBindJSON(&req)

	app, err := h.service.Apply(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeLifecycleError(c, err, "CAMPAIGN_APPLY_FAILED", "Failed to apply to campaign")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

func (h *Handler) ListApplicants(c *gin.Context) {
	id, err := campaignID(c)
	if err != nil {
		return
	}

	applicants, err := h.service.ListApplicants(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeLifecycleError(c, err, "APPLICANTS_FAILED", "Failed to list applicants")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applicants": applicants})
}

func (h *Handler) Assign(c *gin.Context) {
	id, err := campaignID(c)
	if err != nil {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "creator_id is required")
		return
	}

	updated, err := h.service.Assign(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeLifecycleError(c, err, "CAMPAIGN_ASSIGN_FAILED", "Failed to assign campaign")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": updated})
}

func (h *Handler) Submit(c *gin.Context) {
	id, err := campaignID(c)
	if err != nil {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "content_links must not be empty")
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeLifecycleError(c, err, "CAMPAIGN_SUBMIT_FAILED", "Failed to submit content")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": sub})
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := campaignID(c)
	if err != nil {
		return
	}

	result, err := h.service.Approve(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeLifecycleError(c, err, "CAMPAIGN_APPROVE_FAILED", "Failed to approve campaign")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Campaign approved and payment released",
		"campaign": result.Campaign,
		"payment":  result.Payment,
	})
}

func (h *Handler) writeLifecycleError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
	case errors.Is(err, ErrBrandProfileRequired):
		response.Error(c, http.StatusNotFound, "PROFILE_REQUIRED", "Brand profile not found")
	case errors.Is(err, ErrCreatorProfileRequired):
		response.Error(c, http.StatusNotFound, "PROFILE_REQUIRED", "Creator profile not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to manage this campaign")
	case errors.Is(err, ErrNotOpen):
		response.Error(c, http.StatusBadRequest, "NOT_OPEN", "Campaign is not open for applications")
	case errors.Is(err, ErrAlreadyApplied):
		response.Error(c, http.StatusBadRequest, "ALREADY_APPLIED", "You already applied to this campaign")
	case errors.Is(err, ErrNotAssignedCreator):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not assigned to this campaign")
	case errors.Is(err, ErrNotSubmitted):
		response.Error(c, http.StatusBadRequest, "NOT_SUBMITTED", "Campaign has no submitted content to approve")
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}

func campaignID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return 0, err
	}
	return id, nil
}
