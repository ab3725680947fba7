package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kodig3618/Job-Tracker/config"
	"github.com/kodig3618/Job-Tracker/internal/delivery/http/middleware"
	"github.com/kodig3618/Job-Tracker/internal/delivery/http/response"
	"github.com/kodig3618/Job-Tracker/internal/domain"
	"github.com/kodig3618/Job-Tracker/pkg/token"
)

type RouterDeps struct {
	AuthUC  domain.AuthUsecase
	JobUC   domain.JobUsecase
	QueryUC domain.QueryUsecase
	Tokens  *token.Manager
	Config  *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewJobHandler(protected, deps.JobUC, deps.QueryUC)
		NewDashboardHandler(protected, deps.QueryUC)
	}

	return r
}
