package webapp

import (
	"net/http"
	"strconv"
	"strings"

	"creatortrust/internal/domain"
	"creatortrust/pkg/client"

	"github.com/gin-gonic/gin"
)

func (s *Server) Campaigns(c *gin.Context) {
	sess := currentSession(c)

	budgetMin, _ := strconv.ParseFloat(c.Query("budget_min"), 64)
	budgetMax, _ := strconv.ParseFloat(c.Query("budget_max"), 64)
	filters := client.CampaignFilters{
		Status:    c.Query("status"),
		Niche:     c.Query("niche"),
		BudgetMin: budgetMin,
		BudgetMax: budgetMax,
	}

	campaigns, err := sess.Client().ListCampaigns(c.Request.Context(), filters)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "campaigns.tmpl", gin.H{"Error": errText(err)})
		return
	}

	c.HTML(http.StatusOK, "campaigns.tmpl", gin.H{
		"Campaigns": campaigns,
		"Filters":   filters,
		"Role":      sess.Role(),
	})
}

func (s *Server) NewCampaignPage(c *gin.Context) {
	if currentSession(c).Role() != domain.RoleBrand {
		c.Redirect(http.StatusFound, "/campaigns")
		return
	}
	c.HTML(http.StatusOK, "campaign_new.tmpl", gin.H{})
}

// CreateCampaign validates the platform selection before any network call;
// an empty selection never leaves the process.
func (s *Server) CreateCampaign(c *gin.Context) {
	sess := currentSession(c)

	in := campaignForm(c)
	if len(in.Platforms) == 0 {
		c.HTML(http.StatusBadRequest, "campaign_new.tmpl", gin.H{
			"Error": "Select at least one platform",
			"Form":  in,
		})
		return
	}

	created, err := sess.Client().CreateCampaign(c.Request.Context(), in)
	if err != nil {
		c.HTML(http.StatusBadRequest, "campaign_new.tmpl", gin.H{
			"Error": errText(err),
			"Form":  in,
		})
		return
	}

	c.Redirect(http.StatusFound, "/campaigns/"+strconv.FormatInt(created.ID, 10))
}

func (s *Server) CampaignDetail(c *gin.Context) {
	s.renderCampaignDetail(c, http.StatusOK, "", nil)
}

// renderCampaignDetail fetches fresh state and renders the page. On a failed
// mutation the caller passes the error text and submitted values so the form
// comes back populated.
func (s *Server) renderCampaignDetail(c *gin.Context, status int, errMsg string, form map[string]string) {
	sess := currentSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/campaigns")
		return
	}

	detail, err := sess.Client().GetCampaign(c.Request.Context(), id)
	if err != nil {
		c.HTML(http.StatusNotFound, "campaigns.tmpl", gin.H{"Error": errText(err)})
		return
	}

	identity := sess.Current()
	isOwner := identity.BrandProfile != nil && detail.Campaign.BrandID == identity.BrandProfile.ID
	isAssigned := identity.CreatorProfile != nil && detail.Campaign.CreatorID != nil &&
		*detail.Campaign.CreatorID == identity.CreatorProfile.ID

	mode := campaignViewMode(sess.Role(), isOwner, isAssigned, domain.CampaignStatus(detail.Campaign.Status))

	data := gin.H{
		"Detail":   detail,
		"Mode":     int(mode),
		"Role":     sess.Role(),
		"Error":    errMsg,
		"Form":     form,
		"IsOwner":  isOwner,
		"Assigned": isAssigned,
	}

	if mode == ViewManageOpen {
		if applicants, err := sess.Client().ListApplicants(c.Request.Context(), id); err == nil {
			data["Applicants"] = applicants
		}
	}

	c.HTML(status, "campaign_detail.tmpl", data)
}

// Form posts follow mutation-then-redirect: state on screen always comes
// from a fresh GET after the write.

func (s *Server) Apply(c *gin.Context) {
	sess := currentSession(c)
	id := paramID(c)
	message := c.PostForm("message")

	if _, err := sess.Client().ApplyToCampaign(c.Request.Context(), id, message); err != nil {
		s.renderCampaignDetail(c, http.StatusBadRequest, errText(err), map[string]string{"message": message})
		return
	}
	c.Redirect(http.StatusFound, "/campaigns/"+strconv.FormatInt(id, 10))
}

func (s *Server) Assign(c *gin.Context) {
	sess := currentSession(c)
	id := paramID(c)
	creatorID, _ := strconv.ParseInt(c.PostForm("creator_id"), 10, 64)

	if _, err := sess.Client().AssignCampaign(c.Request.Context(), id, creatorID); err != nil {
		s.renderCampaignDetail(c, http.StatusBadRequest, errText(err), map[string]string{
			"creator_id": c.PostForm("creator_id"),
		})
		return
	}
	c.Redirect(http.StatusFound, "/campaigns/"+strconv.FormatInt(id, 10))
}

func (s *Server) Submit(c *gin.Context) {
	sess := currentSession(c)
	id := paramID(c)
	linksRaw := c.PostForm("content_links")
	notes := c.PostForm("notes")

	links := splitLinks(linksRaw)
	if len(links) == 0 {
		s.renderCampaignDetail(c, http.StatusBadRequest, "Add at least one content link", map[string]string{
			"content_links": linksRaw, "notes": notes,
		})
		return
	}

	if _, err := sess.Client().SubmitContent(c.Request.Context(), id, links, notes); err != nil {
		s.renderCampaignDetail(c, http.StatusBadRequest, errText(err), map[string]string{
			"content_links": linksRaw, "notes": notes,
		})
		return
	}
	c.Redirect(http.StatusFound, "/campaigns/"+strconv.FormatInt(id, 10))
}

func (s *Server) Approve(c *gin.Context) {
	sess := currentSession(c)
	id := paramID(c)

	if _, _, err := sess.Client().ApproveCampaign(c.Request.Context(), id); err != nil {
		s.renderCampaignDetail(c, http.StatusBadRequest, errText(err), nil)
		return
	}
	c.Redirect(http.StatusFound, "/campaigns/"+strconv.FormatInt(id, 10))
}

func (s *Server) Escrow(c *gin.Context) {
	sess := currentSession(c)
	id := paramID(c)
	amount, _ := strconv.ParseFloat(c.PostForm("amount"), 64)

	result, err := sess.Client().EscrowPayment(c.Request.Context(), id, amount)
	if err != nil {
		s.renderCampaignDetail(c, http.StatusBadRequest, errText(err), map[string]string{
			"amount": c.PostForm("amount"),
		})
		return
	}

	if result.PaymentURL != "" {
		c.Redirect(http.StatusFound, result.PaymentURL)
		return
	}
	c.Redirect(http.StatusFound, "/campaigns/"+strconv.FormatInt(id, 10))
}

func (s *Server) Review(c *gin.Context) {
	sess := currentSession(c)
	id := paramID(c)
	rating, _ := strconv.Atoi(c.PostForm("rating"))
	comment := c.PostForm("comment")

	in := client.ReviewInput{CampaignID: id, Rating: rating, Comment: comment}
	if _, err := sess.Client().CreateReview(c.Request.Context(), in); err != nil {
		s.renderCampaignDetail(c, http.StatusBadRequest, errText(err), map[string]string{
			"rating": c.PostForm("rating"), "comment": comment,
		})
		return
	}
	c.Redirect(http.StatusFound, "/campaigns/"+strconv.FormatInt(id, 10))
}

func campaignForm(c *gin.Context) client.CampaignInput {
	budget, _ := strconv.ParseFloat(c.PostForm("budget"), 64)
	duration, _ := strconv.Atoi(c.PostForm("duration_days"))
	minFollowers, _ := strconv.Atoi(c.PostForm("min_followers"))

	return client.CampaignInput{
		Title:               c.PostForm("title"),
		Description:         c.PostForm("description"),
		Budget:              budget,
		Platforms:           c.PostFormArray("platforms"),
		DurationDays:        duration,
		Niche:               c.PostForm("niche"),
		MinFollowers:        minFollowers,
		ContentRequirements: c.PostForm("content_requirements"),
	}
}

func splitLinks(raw string) []string {
	var links []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			links = append(links, trimmed)
		}
	}
	return links
}

func paramID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}
