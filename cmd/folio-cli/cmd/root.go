package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/logging"
	"github.com/nfrund/folio/internal/server"
)

var (
	sourceOverride string
	contentFile    string
)

var rootCmd = &cobra.Command{
	Use:   "folio-cli",
	Short: "Folio CLI tool",
	Long: `Folio CLI inspects the content the portfolio server would render.

Available commands:
  content    Fetch every section and print a summary
  frames     Print the hero frame manifest
  db init    Define the SurrealDB content tables
  version    Print the version

Use "folio-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		logging.New()
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceOverride, "source", "", "content source to use (cms, surreal, file); defaults to CONTENT_SOURCE")
	rootCmd.PersistentFlags().StringVar(&contentFile, "file", "", "content file for the file source; implies --source file")
}

// loadConfig reads the environment and applies the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}
	if contentFile != "" {
		cfg.ContentFile = contentFile
		cfg.ContentSource = config.SourceFile
	}
	if sourceOverride != "" {
		cfg.ContentSource = sourceOverride
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSource opens the configured content source; the caller must call the returned close func.
func openSource(ctx context.Context) (*server.ContentSource, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	src, err := server.OpenSource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if src.Close != nil {
			_ = src.Close(ctx)
		}
	}
	return src, closeFn, nil
}
