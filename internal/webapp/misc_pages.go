package webapp

import (
	"net/http"
	"strconv"

	"creatortrust/pkg/client"

	"github.com/gin-gonic/gin"
)

func (s *Server) SearchCreators(c *gin.Context) {
	sess := currentSession(c)

	minFollowers, _ := strconv.Atoi(c.Query("min_followers"))
	filters := client.CreatorSearchFilters{
		Niche:        c.Query("niche"),
		MinFollowers: minFollowers,
		Platform:     c.Query("platform"),
		Location:     c.Query("location"),
	}

	creators, err := sess.Client().SearchCreators(c.Request.Context(), filters)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "creators.tmpl", gin.H{"Error": errText(err)})
		return
	}

	c.HTML(http.StatusOK, "creators.tmpl", gin.H{
		"Creators": creators,
		"Filters":  filters,
	})
}

func (s *Server) Payments(c *gin.Context) {
	sess := currentSession(c)

	history, err := sess.Client().PaymentHistory(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "payments.tmpl", gin.H{"Error": errText(err)})
		return
	}

	c.HTML(http.StatusOK, "payments.tmpl", gin.H{
		"History": history,
		"Role":    sess.Role(),
	})
}
