package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/internal/api"
	"github.com/deckforge/deckforge/internal/config"
	"github.com/deckforge/deckforge/internal/store"
	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/pipeline"
)

// newServeCmd creates the serve command, which runs the HTTP API until the
// process receives an interrupt.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the deckforge HTTP API",
		Long: `Serve starts the HTTP API: template CRUD, palette generation, and
asynchronous export jobs. Storage backends (memory, redis, mongo) are
selected in the TOML config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			templates, jobs, err := buildStores(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer templates.Close()
			defer jobs.Close()

			var artifactCache cache.Cache
			if cfg.Cache.Enabled {
				artifactCache, err = cache.NewFileCache(cfg.Cache.Dir)
				if err != nil {
					logger.Warn("artifact cache unavailable", "dir", cfg.Cache.Dir, "err", err)
					artifactCache = nil
				}
			}
			runner := pipeline.NewRunner(artifactCache, nil, logger)
			defer runner.Close()

			server := api.NewServer(api.Options{
				Addr:      cfg.Server.Addr,
				Templates: templates,
				Jobs:      jobs,
				Runner:    runner,
				Logger:    logger,
			})
			logger.Info("starting deckforge api",
				"addr", cfg.Server.Addr,
				"backend", cfg.Storage.Backend)
			return server.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

// buildStores constructs the template repository and job store named by the
// config. The memory backend serves whichever side the selected backend
// does not cover.
func buildStores(ctx context.Context, cfg config.Config) (store.TemplateRepository, store.JobStore, error) {
	var (
		templates store.TemplateRepository = store.NewMemoryTemplates()
		jobs      store.JobStore           = store.NewMemoryJobs()
	)

	switch cfg.Storage.Backend {
	case config.BackendRedis:
		rj, err := store.NewRedisJobs(ctx, store.RedisConfig{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		jobs = rj
	case config.BackendMongo:
		mt, err := store.NewMongoTemplates(ctx, store.MongoConfig{
			URI:      cfg.Storage.Mongo.URI,
			Database: cfg.Storage.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		templates = mt
	}
	return templates, jobs, nil
}
