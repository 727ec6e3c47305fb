package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hoaithan123/du-an-smart-food/config"
	httpapi "github.com/hoaithan123/du-an-smart-food/internal/api/http"
	"github.com/hoaithan123/du-an-smart-food/internal/service"
	"github.com/hoaithan123/du-an-smart-food/internal/storage"
	"github.com/hoaithan123/du-an-smart-food/internal/weather"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg, logger)
	},
}

func runServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db := config.MustInitPostgres(cfg.Database, logger)
	defer db.Close()
	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}
	cache := storage.NewRedisCache(rdb, cfg.Redis.MarkerTTL, repo)

	orderWriter := config.NewKafkaWriter(cfg.Kafka, cfg.Kafka.OrderTopic)
	defer orderWriter.Close()
	reviewWriter := config.NewKafkaWriter(cfg.Kafka, cfg.Kafka.ReviewTopic)
	defer reviewWriter.Close()
	publisher := storage.NewKafkaPublisher(orderWriter, reviewWriter)

	var weatherProvider service.WeatherProvider
	if cfg.Weather.APIKey != "" {
		client := weather.NewClient(weather.Config{
			APIKey:  cfg.Weather.APIKey,
			City:    cfg.Weather.City,
			BaseURL: cfg.Weather.BaseURL,
			Timeout: cfg.Weather.Timeout,
		})
		weatherProvider = weather.NewCachedProvider(client, cache, cfg.Weather.CacheTTL, logger.Named("weather"))
	} else {
		logger.Warn("weather API key not set, weather recommendations disabled")
	}

	recCfg := recommendationConfig(cfg.Recommendation)
	recommendations := service.NewRecommendationService(repo, repo, repo, weatherProvider, recCfg, logger.Named("recommendations"))

	orders := service.NewOrderService(service.OrderServiceDeps{
		Catalog:   repo,
		Store:     repo,
		Publisher: publisher,
		QR:        service.DefaultQRGenerator{BaseURL: cfg.HTTP.PublicBaseURL},
		Pricing:   pricingPolicy(cfg.Pricing),
		Tiers: service.TierPolicy{
			Silver:   cfg.Membership.Silver,
			Gold:     cfg.Membership.Gold,
			Platinum: cfg.Membership.Platinum,
		},
		Retry: service.RetryPolicy{
			MaxAttempts:     cfg.Membership.RetryAttempts,
			InitialInterval: cfg.Membership.RetryInterval,
		},
		Logger: logger.Named("orders"),
	})

	combos := service.NewComboService(repo, service.ComboPolicy{
		ComboRate: cfg.Pricing.ComboRate,
		SuperRate: cfg.Pricing.SuperComboRate,
	}, logger.Named("combos"))
	catalog := service.NewCatalogService(repo, cache, repo, logger.Named("catalog"))
	reviews := service.NewReviewService(repo, cache, publisher, logger.Named("reviews"))

	handler := httpapi.NewHandler(recommendations, orders, combos, catalog, reviews, logger.Named("http"))
	if cfg.Recommendation.DefaultLimit > 0 {
		handler.DefaultLimit = cfg.Recommendation.DefaultLimit
	}
	return httpapi.StartServer(ctx, cfg.HTTP.Addr, httpapi.NewRouter(handler), logger)
}

func recommendationConfig(c config.RecommendationConfig) service.RecommendationConfig {
	out := service.DefaultRecommendationConfig()
	if c.HistoryWindow > 0 {
		out.HistoryWindow = c.HistoryWindow
	}
	if c.DecayDays > 0 {
		out.DecayDays = c.DecayDays
	}
	if c.TopCategories > 0 {
		out.TopCategories = c.TopCategories
	}
	if c.FavoritePool > 0 {
		out.FavoritePool = c.FavoritePool
	}
	if c.SmartSourceLimit > 0 {
		out.SmartSourceLimit = c.SmartSourceLimit
	}
	if c.DiversityPenalty >= 0 {
		out.Weights.DiversityPenalty = c.DiversityPenalty
	}
	return out
}

func pricingPolicy(c config.PricingConfig) service.PricingPolicy {
	return service.PricingPolicy{
		MinPriceRatio:    c.MinPriceRatio,
		MinTotal:         c.MinTotal,
		MaxTotal:         c.MaxTotal,
		MinAddressLength: c.MinAddressLength,
		MaxNotesLength:   c.MaxNotesLength,
	}
}
