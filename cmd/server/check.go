package main

import (
	"context"
	"designers/internal/config"
	"designers/internal/database"
	"designers/internal/entity/db"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const checkTimeout = 15 * time.Second

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the store is reachable and its tables exist",
		Long:  "Opens one connection with the configured settings and reports whether the designers and llm_interactions_log tables exist. Nothing is created.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig()
			if err != nil {
				return fmt.Errorf("parse config: %w", err)
			}
			setupLogging(cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
			defer cancel()
			return runCheck(ctx, cmd, database.NewPerCallProvider(cfg))
		},
	}
}

func runCheck(ctx context.Context, cmd *cobra.Command, provider database.Provider) error {
	statuses, err := database.InspectTables(ctx, provider,
		db.Designer{}.TableName(),
		db.InteractionLog{}.TableName(),
	)
	if err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}

	out := cmd.OutOrStdout()
	missing := 0
	for _, status := range statuses {
		state := "ok"
		if !status.Exists {
			state = "missing"
			missing++
		}
		fmt.Fprintf(out, "%-22s %s\n", status.Name, state)
	}
	if missing > 0 {
		return fmt.Errorf("%d required table(s) missing", missing)
	}
	return nil
}
