// Package app wires repositories, services and handlers into the API
// router. cmd/api and the e2e tests share this assembly.
package app

import (
	"net/http"

	"creatortrust/internal/config"
	"creatortrust/internal/middleware"
	"creatortrust/internal/modules/analytics"
	"creatortrust/internal/modules/auth"
	"creatortrust/internal/modules/brand"
	"creatortrust/internal/modules/campaign"
	"creatortrust/internal/modules/creator"
	"creatortrust/internal/modules/notification"
	"creatortrust/internal/modules/payment"
	"creatortrust/internal/modules/review"
	jwtsvc "creatortrust/internal/pkg/jwt"
	"creatortrust/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BuildRouter assembles the full API surface on a fresh engine.
func BuildRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	creatorRepo := repository.NewCreatorProfileRepository(db)
	brandRepo := repository.NewBrandProfileRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	profileReader := repository.NewProfileReader(creatorRepo, brandRepo)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := notification.NewHub()
	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub, j)

	var checkout payment.CheckoutProvider = payment.LocalCheckout{}
	if cfg.MidtransServerKey != "" {
		checkout = payment.NewMidtransCheckout(cfg.MidtransServerKey)
	}
	paymentService := payment.NewService(paymentRepo, campaignRepo, brandRepo, creatorRepo, checkout)
	paymentHandler := payment.NewHandler(paymentService)

	authService := auth.NewService(userRepo, profileReader, j)
	authHandler := auth.NewHandler(authService)

	creatorService := creator.NewService(creatorRepo, campaignRepo, paymentRepo)
	creatorHandler := creator.NewHandler(creatorService)

	brandService := brand.NewService(brandRepo, campaignRepo, paymentRepo)
	brandHandler := brand.NewHandler(brandService)

	campaignService := campaign.NewService(
		campaignRepo, applicationRepo, submissionRepo,
		brandRepo, creatorRepo,
		paymentService, notificationService,
	)
	campaignHandler := campaign.NewHandler(campaignService)

	reviewService := review.NewService(reviewRepo, campaignRepo, brandRepo, creatorRepo)
	reviewHandler := review.NewHandler(reviewService)

	analyticsService := analytics.NewService(campaignRepo, submissionRepo, paymentRepo, brandRepo, creatorRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.ErrorLogger(), middleware.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)
		creatorHandler.RegisterPublicRoutes(api)
		brandHandler.RegisterPublicRoutes(api)
		campaignHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterPublicRoutes(api)
		notificationHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			creatorHandler.RegisterProtectedRoutes(protected)
			brandHandler.RegisterProtectedRoutes(protected)
			campaignHandler.RegisterProtectedRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			analyticsHandler.RegisterProtectedRoutes(protected)
			notificationHandler.RegisterProtectedRoutes(protected)
		}
	}

	return r
}
