package delivery

import (
	"catalog_service/internal/domain"
	"catalog_service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	Categories domain.CategoryUseCase
	Products   domain.ProductUseCase
	DB         Pinger
	Paging     PageDefaults
	// Verifier enables bearer auth on mutating routes when non-nil.
	Verifier middleware.TokenVerifier
	Logger   *logrus.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(cfg.Logger))

	NewHealthHandler(cfg.DB, cfg.Logger).RegisterRoutes(router)

	api := router.Group("/")
	if cfg.Verifier != nil {
		api.Use(middleware.ProtectWrites(cfg.Verifier, cfg.Logger))
	}
	NewCategoryHandler(cfg.Categories, cfg.Paging, cfg.Logger).RegisterRoutes(api)
	NewProductHandler(cfg.Products, cfg.Paging, cfg.Logger).RegisterRoutes(api)

	return router
}
