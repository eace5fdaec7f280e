package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/domain"
)

var contentFormat string

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Fetch every content section and print a summary",
	Long: `Fetch every section from the configured content source and print how many
documents each one holds. Sections that fail to load are reported with their error.

Examples:
  folio-cli content                          # table summary from CONTENT_SOURCE
  folio-cli content --file content/site.yaml # check a local content file
  folio-cli content --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		src, closeFn, err := openSource(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		summary := summarize(ctx, src.Repo)
		return writeSummary(cmd.OutOrStdout(), summary, contentFormat)
	},
}

func init() {
	contentCmd.Flags().StringVar(&contentFormat, "format", "table", "output format (table, json)")
	rootCmd.AddCommand(contentCmd)
}

// sectionSummary is the outcome of fetching one section.
type sectionSummary struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
	Error   string `json:"error,omitempty"`
}

// contentSummary describes the whole content source.
type contentSummary struct {
	Title    string           `json:"title"`
	Sections []sectionSummary `json:"sections"`
}

func summarize(ctx context.Context, repo domain.ContentRepository) contentSummary {
	sections := []sectionSummary{
		{Section: "skills"},
		{Section: "testimonials"},
		{Section: "experience"},
		{Section: "education"},
		{Section: "projects"},
	}
	counters := []func(context.Context) (int, error){
		count(repo.Skills),
		count(repo.Testimonials),
		count(repo.Experience),
		count(repo.Education),
		count(repo.Projects),
	}

	var g errgroup.Group
	for i := range sections {
		g.Go(func() error {
			n, err := counters[i](ctx)
			sections[i].Count = n
			if err != nil {
				sections[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	settings := content.NewService(repo, nil).Settings(ctx)
	return contentSummary{Title: settings.Title, Sections: sections}
}

func count[T any](fn func(context.Context) ([]T, error)) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		items, err := fn(ctx)
		return len(items), err
	}
}

func writeSummary(w io.Writer, s contentSummary, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "table", "":
		fmt.Fprintf(w, "Site: %s\n\n", s.Title)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SECTION\tCOUNT\tERROR")
		fmt.Fprintln(tw, "-------\t-----\t-----")
		for _, sec := range s.Sections {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", sec.Section, sec.Count, sec.Error)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (valid: table, json)", format)
	}
}
