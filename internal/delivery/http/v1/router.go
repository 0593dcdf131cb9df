package v1

import (
	"net/http"
	"time"

	"go-talenthub-backend/config"
	"go-talenthub-backend/internal/delivery/http/middleware"
	"go-talenthub-backend/internal/delivery/http/response"
	"go-talenthub-backend/internal/domain"
	"go-talenthub-backend/pkg/auth"
	"go-talenthub-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	ProfileUC    domain.ProfileUsecase
	JobUC        domain.JobUsecase
	ContactUC    domain.ContactUsecase
	Storage      *storage.Client // nil when object storage is not configured
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	rlCfg := middleware.DefaultRateLimitConfig()
	if deps.Config != nil {
		if deps.Config.RateLimitGlobalThreshold > 0 {
			rlCfg.Limit = deps.Config.RateLimitGlobalThreshold
		}
		if deps.Config.RateLimitWindowSeconds > 0 {
			rlCfg.Window = time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
		}
	}
	r.Use(middleware.RateLimit(rlCfg))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes with optional viewer identity: the profile view adapts
	// to a signed-in viewer but never requires one.
	viewer := v1.Group("")
	viewer.Use(middleware.OptionalAuth(deps.JWKSProvider, deps.Config))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewAuthHandler(protected, deps.AuthUC)
		NewProfileHandler(viewer, protected, deps.ProfileUC, deps.Storage)
		NewJobHandler(v1, protected, deps.JobUC)
		NewContactHandler(protected, deps.ContactUC, middleware.RateLimit(middleware.ContactRateLimitConfig()))
		NewChatHandler(protected, deps.ContactUC)
		NewAdminHandler(protected, deps.JobUC)
	}

	return r
}
