package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/folio/internal/database"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "SurrealDB content source maintenance",
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Define the content tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		db, err := database.NewDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close(ctx)

		if err := database.DefineSchema(ctx, db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema defined.")
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
	rootCmd.AddCommand(dbCmd)
}
