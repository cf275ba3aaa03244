package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mmcdole/artworks/internal/adapter"
	"github.com/mmcdole/artworks/internal/domain"
	"github.com/mmcdole/artworks/internal/service"
	"github.com/spf13/cobra"
)

func newSelectCmd(a *app) *cobra.Command {
	var fromPage int
	var formatName string

	cmd := &cobra.Command{
		Use:   "select COUNT",
		Short: "Select the next COUNT records starting at a page and print them",
		Long: `Select walks the collection from --from-page onward, one page at a time,
until COUNT records are collected, then prints them in catalog order.

Nothing is printed when the collection runs out before COUNT records are found
or when a page fails to load.`,
		Example: `  # 30 records starting at page 4, as JSON
  artworks select 30 --from-page 4 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := service.ParseCount(args[0], a.cfg.Selection.MaxTarget)
			if err != nil {
				return err
			}
			if fromPage < 1 {
				return fmt.Errorf("%w: --from-page %d", domain.ErrInvalidPage, fromPage)
			}
			format, err := adapter.ParseFormat(formatName)
			if err != nil {
				return err
			}

			res, err := a.selectFrom(cmd.Context(), fromPage, target)
			if err != nil {
				return err
			}

			return adapter.WriteArtworks(cmd.OutOrStdout(), res.Selection.Items(), format, adapter.ExportMeta{
				TotalCount: res.TotalCount,
			})
		},
	}

	cmd.Flags().IntVar(&fromPage, "from-page", 1, "Page the selection starts on")
	cmd.Flags().StringVar(&formatName, "format", string(adapter.FormatTable), "Output format (table, yaml, json)")

	return cmd
}

// selectFrom loads the start page, then accumulates from it with an empty selection
func (a *app) selectFrom(ctx context.Context, fromPage, target int) (*service.AccumulateResult, error) {
	label := fmt.Sprintf("Selecting %d records from page %d...", target, fromPage)

	return runWithSpinner(ctx, os.Stderr, label, func(ctx context.Context) (*service.AccumulateResult, error) {
		page, err := a.catalog.FetchPage(ctx, fromPage)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", fromPage, err)
		}

		return a.selection.Accumulate(ctx, service.AccumulateRequest{
			Target:       target,
			Selected:     domain.NewSelection(),
			CurrentItems: page.Items,
			CurrentPage:  fromPage,
			TotalCount:   page.TotalCount,
		})
	})
}
