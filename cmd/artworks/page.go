package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/mmcdole/artworks/internal/adapter"
	"github.com/mmcdole/artworks/internal/domain"
	"github.com/spf13/cobra"
)

func newPageCmd(a *app) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "page [N]",
		Short: "Fetch one page of the collection and print it",
		Example: `  # First page as a table
  artworks page

  # Page 3 as YAML
  artworks page 3 --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("%w: %q", domain.ErrInvalidPage, args[0])
				}
				index = n
			}

			format, err := adapter.ParseFormat(formatName)
			if err != nil {
				return err
			}
			return a.printPage(cmd.Context(), cmd.OutOrStdout(), index, format)
		},
	}

	cmd.Flags().StringVar(&formatName, "format", string(adapter.FormatTable), "Output format (table, yaml, json)")

	return cmd
}

// printPage fetches a single page and writes its records to w
func (a *app) printPage(ctx context.Context, w io.Writer, index int, format adapter.Format) error {
	page, err := a.catalog.FetchPage(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to fetch page %d: %w", index, err)
	}

	return adapter.WriteArtworks(w, page.Items, format, adapter.ExportMeta{
		Page:       page.Index,
		TotalCount: page.TotalCount,
	})
}
