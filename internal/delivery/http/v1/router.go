package v1

import (
	"net/http"
	"time"

	"go-volink-backend/config"
	"go-volink-backend/internal/delivery/http/middleware"
	"go-volink-backend/internal/delivery/http/response"
	"go-volink-backend/internal/domain"
	"go-volink-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	VolunteerUC    domain.VolunteerUsecase
	OpportunityUC  domain.OpportunityUsecase
	ApplicationUC  domain.ApplicationUsecase
	OrganisationUC domain.OrganisationUsecase
	NotificationUC domain.NotificationUsecase
	Tokens         *auth.TokenManager
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	rateWindow := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, rateWindow)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints get a stricter limiter on top of the global one.
	authGroup := v1.Group("")
	authGroup.Use(middleware.RateLimitMiddleware(
		middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, rateWindow)))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(authGroup, protected, deps.AuthUC, deps.Config)
		NewOpportunityHandler(v1, protected, deps.OpportunityUC)
		NewVolunteerHandler(protected, deps.VolunteerUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewOrganisationHandler(protected, deps.OrganisationUC)
		NewNotificationHandler(protected, deps.NotificationUC)
	}

	return r
}
