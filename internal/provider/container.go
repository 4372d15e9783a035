package provider

import (
	"github.com/freshmart-next/internal/cache"
	"github.com/freshmart-next/internal/config"
	"github.com/freshmart-next/internal/logger"
	"github.com/freshmart-next/internal/models"
	"github.com/freshmart-next/internal/queue"
	"github.com/freshmart-next/internal/repository"
	"github.com/freshmart-next/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo         repository.UserRepository
	UserLoginLogRepo repository.UserLoginLogRepository
	CategoryRepo     repository.CategoryRepository
	SubcategoryRepo  repository.SubcategoryRepository
	ProductRepo      repository.ProductRepository
	CartRepo         repository.CartRepository

	// Services
	AuthService         *service.AuthService
	CategoryService     *service.CategoryService
	SubcategoryService  *service.SubcategoryService
	ProductService      *service.ProductService
	CartService         *service.CartService
	UserLoginLogService *service.UserLoginLogService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	db := models.DB

	userRepo := repository.NewUserRepository(db)
	userLoginLogRepo := repository.NewUserLoginLogRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)

	return &Container{
		Config:      cfg,
		QueueClient: queueClient,

		UserRepo:         userRepo,
		UserLoginLogRepo: userLoginLogRepo,
		CategoryRepo:     categoryRepo,
		SubcategoryRepo:  subcategoryRepo,
		ProductRepo:      productRepo,
		CartRepo:         cartRepo,

		AuthService:         service.NewAuthService(cfg.UserJWT, userRepo),
		CategoryService:     service.NewCategoryService(categoryRepo),
		SubcategoryService:  service.NewSubcategoryService(subcategoryRepo),
		ProductService:      service.NewProductService(productRepo, cfg.Catalog),
		CartService:         service.NewCartService(cartRepo, productRepo),
		UserLoginLogService: service.NewUserLoginLogService(userLoginLogRepo),
	}
}

// Close releases container-held resources.
func (c *Container) Close() error {
	if c == nil || c.QueueClient == nil {
		return nil
	}
	return c.QueueClient.Close()
}
