package cmd

import (
	"math/rand"

	"github.com/hoaithan123/du-an-smart-food/config"
	"github.com/hoaithan123/du-an-smart-food/internal/seed"
	"github.com/hoaithan123/du-an-smart-food/internal/storage"

	"github.com/jaswdr/faker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedUsers  int
	seedRandom int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and fill it with a demo catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db := config.MustInitPostgres(cfg.Database, logger)
		defer db.Close()

		if err := storage.NewPostgresRepository(db).EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		fake := faker.NewWithSeed(rand.NewSource(seedRandom))
		summary, err := seed.NewSeeder(db, fake, seedUsers, logger).Run(cmd.Context())
		if err != nil {
			return err
		}
		logger.Info("seed complete", zap.Int("dishes", summary.Dishes))
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedUsers, "users", 20, "number of demo users to create")
	seedCmd.Flags().Int64Var(&seedRandom, "seed", 42, "random seed for generated data")
}
