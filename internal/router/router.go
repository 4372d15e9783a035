package router

import (
	"fmt"
	"strings"

	"github.com/freshmart-next/internal/cache"
	"github.com/freshmart-next/internal/config"
	publichandlers "github.com/freshmart-next/internal/http/handlers/public"
	"github.com/freshmart-next/internal/logger"
	"github.com/freshmart-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine and the full route table.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "fm"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded catalog images.
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/categories", publicHandler.ListCategories)
		apiV1.GET("/subcategories", publicHandler.ListSubcategories)
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:slug", publicHandler.GetProduct)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/token/create",
				RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")),
				publicHandler.CreateToken)
			auth.POST("/token/refresh", publicHandler.RefreshToken)
		}

		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart", publicHandler.ReplaceCart)
			user.POST("/cart/clear", publicHandler.ClearCart)
		}
	}

	return r
}
