package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"adrecon/internal/adapter/notify"
	"adrecon/internal/adapter/usecase"
	"adrecon/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo campaigns, observations and an order into the configured store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		be, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		defer be.close()

		notifier := notify.NewLogger(logger)
		recon := usecase.NewReconciliationUseCase(be.recon, notifier, logger)
		pop := usecase.NewProofOfPlayUseCase(be.pop, notifier, logger)

		rejected, err := db.Seed(cmd.Context(), recon, pop)
		if err != nil {
			return err
		}
		logger.Info("demo data seeded", slog.Int("rejected", rejected))
		return nil
	},
}
