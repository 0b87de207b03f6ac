// Package webapp is the server-rendered frontend. It talks to the API
// exclusively through pkg/client; the backend stays a separate process
// reached over HTTP.
package webapp

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"creatortrust/internal/middleware"
	"creatortrust/pkg/client"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Server struct {
	apiBaseURL string
	httpClient *http.Client
	cookieTTL  time.Duration
	engine     *gin.Engine
}

func NewServer(apiBaseURL string, cookieTTL time.Duration) *Server {
	s := &Server{
		apiBaseURL: apiBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cookieTTL:  cookieTTL,
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.ErrorLogger())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	s.engine = engine
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	e := s.engine

	e.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	e.GET("/login", s.LoginPage)
	e.POST("/login", s.Login)
	e.GET("/signup", s.SignupPage)
	e.POST("/signup", s.Signup)
	e.POST("/logout", s.Logout)

	guarded := e.Group("", s.RequireSession())
	{
		guarded.GET("/dashboard", s.Dashboard)
		guarded.GET("/profile", s.ProfilePage)
		guarded.POST("/profile", s.SaveProfile)

		guarded.GET("/campaigns", s.Campaigns)
		guarded.GET("/campaigns/new", s.NewCampaignPage)
		guarded.POST("/campaigns", s.CreateCampaign)
		guarded.GET("/campaigns/:id", s.CampaignDetail)
		guarded.POST("/campaigns/:id/apply", s.Apply)
		guarded.POST("/campaigns/:id/assign", s.Assign)
		guarded.POST("/campaigns/:id/submit", s.Submit)
		guarded.POST("/campaigns/:id/approve", s.Approve)
		guarded.POST("/campaigns/:id/escrow", s.Escrow)
		guarded.POST("/campaigns/:id/review", s.Review)

		guarded.GET("/creators", s.SearchCreators)
		guarded.GET("/payments", s.Payments)
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// errText keeps server-provided error text intact on re-render; everything
// else degrades to a generic line.
func errText(err error) string {
	if err == nil {
		return ""
	}
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return "Something went wrong. Please try again."
}
