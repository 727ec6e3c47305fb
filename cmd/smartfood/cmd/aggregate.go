package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hoaithan123/du-an-smart-food/config"
	"github.com/hoaithan123/du-an-smart-food/internal/aggregator"
	"github.com/hoaithan123/du-an-smart-food/internal/storage"

	"github.com/spf13/cobra"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Consume order and review events into popularity rankings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db := config.MustInitPostgres(cfg.Database, logger)
		defer db.Close()
		rdb := config.MustInitRedis(cfg.Redis, logger)
		defer rdb.Close()

		reader := config.NewKafkaReader(cfg.Kafka, cfg.Kafka.OrderTopic, cfg.Kafka.ReviewTopic)
		defer reader.Close()

		repo := storage.NewPostgresRepository(db)
		cache := storage.NewRedisCache(rdb, cfg.Redis.MarkerTTL, repo)
		return aggregator.NewConsumer(reader, repo, cache, logger.Named("aggregator")).Start(ctx)
	},
}
