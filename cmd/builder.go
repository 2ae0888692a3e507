package cmd

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"farmshop/api"
	"farmshop/api/address"
	apicatalog "farmshop/api/catalog"
	"farmshop/api/health"
	apiorder "farmshop/api/order"
	apishipping "farmshop/api/shipping"
	apiuser "farmshop/api/user"
	catalogapp "farmshop/application/catalog"
	orderapp "farmshop/application/order"
	shippingapp "farmshop/application/shipping"
	userapp "farmshop/application/user"
	"farmshop/config"
	catalogdomain "farmshop/domain/catalog"
	orderdomain "farmshop/domain/order"
	shippingdomain "farmshop/domain/shipping"
	userdomain "farmshop/domain/user"
	"farmshop/infrastructure/messaging/rabbitmq"
	"farmshop/infrastructure/persistence/mocks"
	"farmshop/infrastructure/persistence/mysql"
	"farmshop/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Builder wires configuration, persistence and services into an App.
type Builder struct {
	cfg *config.Config
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build initializes the logger, selects the persistence layer, wires the
// optional redis cache and event publisher, and assembles the router.
func (b *Builder) Build() *App {
	if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	db, userRepo, catalogRepo, shippingRepo, orderRepo := b.initRepositories()

	userService := userapp.NewService(userRepo)
	catalogService := catalogapp.NewService(catalogRepo)
	shippingService := shippingapp.NewService(shippingRepo)

	calc := orderapp.NewCalculator(catalogRepo, shippingRepo)
	if b.cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     b.cfg.Redis.Addr,
			Password: b.cfg.Redis.Password,
			DB:       b.cfg.Redis.DB,
		})
		calc.SetRedisClient(client, b.cfg.Redis.TTL)
		logger.Info("Redis product cache enabled", zap.String("addr", b.cfg.Redis.Addr))
	}

	orderService := orderapp.NewService(orderRepo, calc)

	var publisher *rabbitmq.Publisher
	if b.cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(b.cfg.RabbitMQ.URL, b.cfg.RabbitMQ.Exchange)
		if err != nil {
			// The shop works without the broker; orders just go unannounced.
			logger.Warn("Failed to connect to RabbitMQ, order events disabled", zap.Error(err))
		} else {
			publisher = p
			orderService.SetEventPublisher(p)
		}
	}

	healthController := health.NewController(b.cfg, sqlDBOrNil(db))
	router := api.NewRouter(
		b.cfg,
		userService,
		healthController,
		apiuser.NewController(userService),
		address.NewController(userService),
		apicatalog.NewController(catalogService),
		apishipping.NewController(shippingService),
		apiorder.NewController(orderService),
	)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config:    b.cfg,
		router:    router,
		server:    server,
		db:        db,
		publisher: publisher,
	}
}

func (b *Builder) initRepositories() (*gorm.DB, userdomain.Repository, catalogdomain.Repository, shippingdomain.Repository, orderdomain.Repository) {
	if b.cfg.Database.Type == "mysql" {
		logger.Info("Using MySQL/GORM persistence layer")

		db, err := mysql.Connect(&b.cfg.Database, b.cfg.Log.Level)
		if err != nil {
			logger.Fatal("Failed to connect to MySQL", zap.Error(err))
		}

		return db,
			mysql.NewUserRepository(db),
			mysql.NewCatalogRepository(db),
			mysql.NewShippingRepository(db),
			mysql.NewOrderRepository(db)
	}

	logger.Info("Using in-memory persistence layer")
	return nil,
		mocks.NewUserRepository(),
		mocks.NewCatalogRepository(),
		mocks.NewShippingRepository(),
		mocks.NewOrderRepository()
}

func sqlDBOrNil(db *gorm.DB) *sql.DB {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil
	}
	return sqlDB
}
