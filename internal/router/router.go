package router

import (
	"time"

	"pesona/config"
	"pesona/internal/domain"
	"pesona/internal/handler"
	"pesona/internal/middleware"
	"pesona/internal/repository"
	"pesona/internal/service"
	"pesona/pkg/cloudinary"
	"pesona/pkg/weather"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// contentRoutes is implemented by every instantiated ContentHandler.
type contentRoutes interface {
	List(*gin.Context)
	GetBySlug(*gin.Context)
	AdminList(*gin.Context)
	AdminGet(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, forecast *weather.Client, log *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.Server.CORSOrigin))
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(300, time.Minute)))

	// Repositories
	destRepo := repository.NewDestinationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	culinaryRepo := repository.NewCulinaryRepository(db)
	accomRepo := repository.NewAccommodationRepository(db)
	transportRepo := repository.NewTransportRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	heroRepo := repository.NewHeroRepository(db)
	instagramRepo := repository.NewInstagramRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	userRepo := repository.NewAdminUserRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, authSvc, activityRepo, log)
	destHandler := handler.NewContentHandler(destRepo, activityRepo, domain.EntityDestination, log)
	eventHandler := handler.NewContentHandler(eventRepo, activityRepo, domain.EntityEvent, log).
		WithFilters(func(c *gin.Context) []repository.Scope {
			if c.Query("upcoming") == "true" {
				return []repository.Scope{repository.Upcoming(time.Now())}
			}
			return nil
		})
	culinaryHandler := handler.NewContentHandler(culinaryRepo, activityRepo, domain.EntityCulinary, log)
	accomHandler := handler.NewContentHandler(accomRepo, activityRepo, domain.EntityAccommodation, log)
	transportHandler := handler.NewContentHandler(transportRepo, activityRepo, domain.EntityTransport, log)
	articleHandler := handler.NewContentHandler(articleRepo, activityRepo, domain.EntityArticle, log)
	heroHandler := handler.NewHeroHandler(heroRepo, activityRepo, log)
	instagramHandler := handler.NewInstagramHandler(instagramRepo, activityRepo, log)
	uploadHandler := handler.NewUploadHandler(cloud, log)
	weatherHandler := handler.NewWeatherHandler(forecast)
	activityHandler := handler.NewActivityHandler(activityRepo)
	sitemapHandler := handler.NewSitemapHandler(cfg.Server.BaseURL, map[string]handler.SlugLister{
		"destinations":   destRepo.PublishedSlugs,
		"events":         eventRepo.PublishedSlugs,
		"culinary":       culinaryRepo.PublishedSlugs,
		"accommodations": accomRepo.PublishedSlugs,
		"transport":      transportRepo.PublishedSlugs,
		"articles":       articleRepo.PublishedSlugs,
	}, log)

	authMw := middleware.AuthRequired(&cfg.JWT)
	editorMw := middleware.RequireRole(domain.RoleAdmin, domain.RoleEditor)

	r.GET("/sitemap.xml", sitemapHandler.Sitemap)
	r.GET("/robots.txt", sitemapHandler.Robots)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authMw, authHandler.Me)
			authGroup.POST("/logout", authMw, authHandler.Logout)
		}

		api.GET("/hero/:page", heroHandler.Resolve)
		api.GET("/instagram", instagramHandler.Feed)
		api.GET("/weather", weatherHandler.Forecast)

		admin := api.Group("/admin", authMw, editorMw)
		{
			admin.POST("/upload", uploadHandler.Upload)
			admin.GET("/activity", activityHandler.Recent)

			admin.GET("/hero-slides", heroHandler.AdminList)
			admin.POST("/hero-slides", heroHandler.Create)
			admin.PUT("/hero-slides/:id", heroHandler.Update)
			admin.DELETE("/hero-slides/:id", heroHandler.Delete)

			admin.GET("/instagram", instagramHandler.AdminList)
			admin.POST("/instagram", instagramHandler.Create)
			admin.PUT("/instagram/:id", instagramHandler.Update)
			admin.DELETE("/instagram/:id", instagramHandler.Delete)
		}

		registerContent(api, admin, "destinations", destHandler)
		registerContent(api, admin, "events", eventHandler)
		registerContent(api, admin, "culinary", culinaryHandler)
		registerContent(api, admin, "accommodations", accomHandler)
		registerContent(api, admin, "transport", transportHandler)
		registerContent(api, admin, "articles", articleHandler)
	}

	return r
}

func registerContent(api, admin *gin.RouterGroup, path string, h contentRoutes) {
	api.GET("/"+path, h.List)
	api.GET("/"+path+"/:slug", h.GetBySlug)

	admin.GET("/"+path, h.AdminList)
	admin.GET("/"+path+"/:id", h.AdminGet)
	admin.POST("/"+path, h.Create)
	admin.PUT("/"+path+"/:id", h.Update)
	admin.DELETE("/"+path+"/:id", h.Delete)
}
