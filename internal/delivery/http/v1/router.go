package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/domain"
)

type RouterDeps struct {
	PolishUC domain.PolishUsecase
	ResumeUC domain.ResumeUsecase
	Registry domain.ProviderRegistry
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	NewPolishHandler(api, deps.PolishUC, deps.Registry)
	NewResumeHandler(api, deps.ResumeUC)
	NewSettingsHandler(api, deps.ResumeUC)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
