package server

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/libs"
	"storefront/middleware"
	"storefront/repositories"
	"storefront/routes"
	"storefront/services"
	"storefront/utils"
)

// New builds the HTTP engine and everything behind it. The returned cleanup
// closes whatever connections were opened.
func New(cfg *config.Config, log *utils.Logger) (*gin.Engine, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	repo, closeRepo, err := newRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeRepo)

	checkoutCfg := services.CheckoutConfig{
		Gateway: newGateway(cfg),
		IDs:     services.UUIDGenerator{Prefix: cfg.OrderIDPrefix},
		Pricing: services.PricingPolicy{
			Currency:              cfg.Currency,
			FreeShippingThreshold: cfg.FreeShippingThreshold,
			ShippingFee:           cfg.ShippingFee,
			TaxBasisPoints:        cfg.TaxBasisPoints,
		},
	}

	if cfg.RabbitURL != "" {
		publisher, err := libs.NewOrderEventPublisher(cfg.RabbitURL, cfg.OrderExchange, log)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = publisher.Close() })
		checkoutCfg.Listeners = append(checkoutCfg.Listeners, publisher)
	}

	if cfg.SMTPHost != "" {
		mailer, err := libs.NewOrderMailer(libs.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		}, "Storefront")
		if err != nil {
			log.Warn("order mailer disabled", "error", err)
		} else {
			checkoutCfg.Listeners = append(checkoutCfg.Listeners, mailer)
		}
	}

	sessions := services.NewSessions(services.NewPersistence(repo, log), checkoutCfg, log)
	if cfg.SessionIdleTTL > 0 {
		evictCtx, stopEviction := context.WithCancel(context.Background())
		go sessions.RunEviction(evictCtx, cfg.SessionIdleTTL/2, cfg.SessionIdleTTL)
		closers = append(closers, stopEviction)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, sessions, cfg.JWTSecret)

	log.Info("server initialized",
		"cart_storage", cfg.CartStorage,
		"payment_mode", cfg.PaymentMode,
		"listeners", len(checkoutCfg.Listeners),
	)
	return router, cleanup, nil
}

func newRepository(cfg *config.Config) (repositories.CartRepository, func(), error) {
	switch cfg.CartStorage {
	case "", "memory":
		return repositories.NewMemoryCartRepository(), func() {}, nil
	case "redis":
		rdb, err := config.ConnectRedis(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewRedisCartRepository(rdb), func() { _ = rdb.Close() }, nil
	case "postgres":
		pool, err := config.ConnectDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewPostgresCartRepository(pool), pool.Close, nil
	case "mongo":
		client, err := config.ConnectMongo(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return repositories.NewMongoCartRepository(client.Database(cfg.MongoDB)), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown CART_STORAGE %q", cfg.CartStorage)
	}
}

func newGateway(cfg *config.Config) services.PaymentGateway {
	if cfg.PaymentMode == "http" && cfg.PaymentGatewayURL != "" {
		return libs.NewHTTPGateway(cfg.PaymentGatewayURL, cfg.PaymentPublicKey, cfg.PaymentTimeout)
	}
	return libs.SimulatedGateway{Delay: cfg.PaymentDelay}
}
