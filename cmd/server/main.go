package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"farmbook/config"
	"farmbook/database"
	"farmbook/pkg/logger"
	"farmbook/pkg/seed"
	"farmbook/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "farmbook",
		Short:         "Farm record keeping API",
		Version:       router.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	return root
}

// boot loads config, builds the logger and opens a migrated database.
func boot() (config.AppConfig, *logger.Logger, *gorm.DB, func(), error) {
	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return cfg, nil, nil, nil, fmt.Errorf("logger: %w", err)
	}
	db, err := database.Open(cfg)
	if err != nil {
		log.Sync()
		return cfg, nil, nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		log.Sync()
		return cfg, nil, nil, nil, err
	}
	closeAll := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		log.Sync()
	}
	return cfg, log, db, closeAll, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, db, closeAll, err := boot()
			if err != nil {
				return err
			}
			defer closeAll()
			log.Info("config loaded", cfg.Fields()...)

			e, err := router.Build(db, cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				log.Info("listening", "port", cfg.Port, "version", router.Version)
				if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errc <- err
				}
				close(errc)
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			log.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(sctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and exit",
		RunE: func(*cobra.Command, []string) error {
			cfg, log, _, closeAll, err := boot()
			if err != nil {
				return err
			}
			defer closeAll()
			log.Info("schema migrated", "driver", cfg.DBDriver)
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var cycles int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert reference data and sample crop cycles into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, db, closeAll, err := boot()
			if err != nil {
				return err
			}
			defer closeAll()
			sum, err := seed.Run(cmd.Context(), db, cycles, log)
			if err != nil {
				return err
			}
			if sum.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "database already has data, nothing seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d units, %d parcels, %d crop cycles, %d stages, %d activity logs\n",
				sum.Units, sum.LandParcels, sum.CropCycles, sum.Stages, sum.ActivityLogs)
			return nil
		},
	}
	cmd.Flags().IntVar(&cycles, "cycles", 6, "number of sample crop cycles")
	return cmd
}
