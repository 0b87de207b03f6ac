package webapp

import (
	"errors"
	"net/http"
	"strconv"

	"creatortrust/internal/domain"
	"creatortrust/pkg/client"

	"github.com/gin-gonic/gin"
)

// Dashboard renders the role-matching variant. A missing profile sends the
// user to onboarding instead of a broken dashboard.
func (s *Server) Dashboard(c *gin.Context) {
	sess := currentSession(c)
	ctx := c.Request.Context()

	switch sess.Role() {
	case domain.RoleCreator:
		dash, err := sess.Client().CreatorDashboard(ctx)
		if err != nil {
			if isProfileMissing(err) {
				c.Redirect(http.StatusFound, "/profile")
				return
			}
			c.HTML(http.StatusInternalServerError, "dashboard_creator.tmpl", gin.H{"Error": errText(err)})
			return
		}
		c.HTML(http.StatusOK, "dashboard_creator.tmpl", gin.H{
			"Identity":  sess.Current(),
			"Dashboard": dash,
		})
	case domain.RoleBrand:
		dash, err := sess.Client().BrandDashboard(ctx)
		if err != nil {
			if isProfileMissing(err) {
				c.Redirect(http.StatusFound, "/profile")
				return
			}
			c.HTML(http.StatusInternalServerError, "dashboard_brand.tmpl", gin.H{"Error": errText(err)})
			return
		}
		c.HTML(http.StatusOK, "dashboard_brand.tmpl", gin.H{
			"Identity":  sess.Current(),
			"Dashboard": dash,
		})
	default:
		c.Redirect(http.StatusFound, "/login")
	}
}

func (s *Server) ProfilePage(c *gin.Context) {
	sess := currentSession(c)
	id := sess.Current()

	switch sess.Role() {
	case domain.RoleCreator:
		c.HTML(http.StatusOK, "profile_creator.tmpl", gin.H{"Profile": id.CreatorProfile})
	case domain.RoleBrand:
		c.HTML(http.StatusOK, "profile_brand.tmpl", gin.H{"Profile": id.BrandProfile})
	default:
		c.Redirect(http.StatusFound, "/login")
	}
}

func (s *Server) SaveProfile(c *gin.Context) {
	sess := currentSession(c)
	ctx := c.Request.Context()

	switch sess.Role() {
	case domain.RoleCreator:
		in := creatorProfileForm(c)
		if _, err := sess.Client().UpsertCreatorProfile(ctx, in); err != nil {
			c.HTML(http.StatusBadRequest, "profile_creator.tmpl", gin.H{"Error": errText(err), "Form": in})
			return
		}
	case domain.RoleBrand:
		in := client.BrandProfileInput{
			CompanyName: c.PostForm("company_name"),
			Industry:    c.PostForm("industry"),
			Website:     c.PostForm("website"),
			Description: c.PostForm("description"),
		}
		if _, err := sess.Client().UpsertBrandProfile(ctx, in); err != nil {
			c.HTML(http.StatusBadRequest, "profile_brand.tmpl", gin.H{"Error": errText(err), "Form": in})
			return
		}
	default:
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func creatorProfileForm(c *gin.Context) client.CreatorProfileInput {
	ig, _ := strconv.Atoi(c.PostForm("followers_instagram"))
	tk, _ := strconv.Atoi(c.PostForm("followers_tiktok"))
	yt, _ := strconv.Atoi(c.PostForm("followers_youtube"))
	er, _ := strconv.ParseFloat(c.PostForm("engagement_rate"), 64)

	return client.CreatorProfileInput{
		Name:               c.PostForm("name"),
		Bio:                c.PostForm("bio"),
		Niche:              c.PostForm("niche"),
		Location:           c.PostForm("location"),
		InstagramHandle:    c.PostForm("instagram_handle"),
		TiktokHandle:       c.PostForm("tiktok_handle"),
		YoutubeHandle:      c.PostForm("youtube_handle"),
		FollowersInstagram: ig,
		FollowersTiktok:    tk,
		FollowersYoutube:   yt,
		EngagementRate:     er,
	}
}

func isProfileMissing(err error) bool {
	var reqErr *client.RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	return reqErr.Code == "PROFILE_REQUIRED" || (reqErr.StatusCode == http.StatusNotFound && reqErr.Code == "NOT_FOUND")
}
