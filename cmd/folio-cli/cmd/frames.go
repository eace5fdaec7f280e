package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/nfrund/folio/internal/content"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Print the hero frame manifest",
	Long: `Print the frame manifest served at /api/hero/frames, built from the hero
settings of the configured content source. Useful to check which frame files
must exist under web/static/hero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		src, closeFn, err := openSource(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		manifest := content.NewService(src.Repo, nil).Hero(ctx)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(manifest)
	},
}

func init() {
	rootCmd.AddCommand(framesCmd)
}
