package v1

import (
	"net/http"
	"time"

	"ahkii-burger-backend/config"
	"ahkii-burger-backend/internal/delivery/http/middleware"
	"ahkii-burger-backend/internal/delivery/http/response"
	"ahkii-burger-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	MenuUC    domain.MenuUsecase
	ContactUC domain.ContactUsecase
	InfoUC    domain.InfoUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes - the whole surface is public, there is no auth
	NewMenuHandler(v1, deps.MenuUC)
	NewInfoHandler(v1, deps.InfoUC)

	// The contact form is the only write endpoint, keep it rate limited
	contactLimit := middleware.RateLimit(middleware.ContactRateLimitConfig(
		deps.Config.RateLimitContactLimit,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	NewContactHandler(v1, deps.ContactUC, contactLimit)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
