package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-search/internal/config"
	"github.com/jonathan/talent-search/internal/logger"
	"github.com/jonathan/talent-search/internal/search"
	"github.com/jonathan/talent-search/internal/server"
	"github.com/jonathan/talent-search/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the search, filter options, and candidate detail endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stdout sync failure is not actionable

	snapshot, err := loadSnapshot(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	log.Info("candidate snapshot loaded", zap.Int("candidates", snapshot.Len()))

	engine, err := search.New(snapshot, search.Config{
		PoolSize:       cfg.ScoringPoolSize,
		Timeout:        cfg.ScoringTimeout,
		MaxLimit:       cfg.MaxPageSize,
		FilterCacheTTL: cfg.FilterCacheTTL,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	srv := server.New(server.Config{
		Port:             cfg.Port,
		RateLimitEnabled: cfg.RateLimitEnabled,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
	}, engine, log)

	return srv.Start()
}

// loadSnapshot materializes candidates from whichever source the config
// names: the database when DATABASE_URL is set, a JSON dataset otherwise.
func loadSnapshot(ctx context.Context, cfg *config.Config, log *zap.Logger) (*store.Snapshot, error) {
	if cfg.DatabaseURL != "" {
		log.Info("loading candidates from database")
		loader, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer loader.Close()
		return loader.Load(ctx)
	}

	log.Info("loading candidates from file", zap.String("path", cfg.CandidatesFile))
	return store.LoadFile(cfg.CandidatesFile)
}
