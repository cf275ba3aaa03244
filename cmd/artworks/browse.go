package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artworks/internal/adapter"
	"github.com/mmcdole/artworks/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type browseOptions struct {
	page   int
	output string
}

func (o *browseOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.page, "page", 1, "Page to open first")
	cmd.Flags().StringVar(&o.output, "output", "", "Write the final selection to stdout on quit (table, yaml, json)")
}

func newBrowseCmd(a *app) *cobra.Command {
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser",
		Example: `  # Start on page 5
  artworks browse --page 5

  # Pick artworks, then pipe the selection as JSON on quit
  artworks browse --output json > selection.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBrowse(cmd, opts)
		},
	}
	opts.register(cmd)

	return cmd
}

func (a *app) runBrowse(cmd *cobra.Command, opts browseOptions) error {
	if opts.page < 1 {
		return fmt.Errorf("--page must be at least 1 (got %d)", opts.page)
	}

	var format adapter.Format
	if opts.output != "" {
		f, err := adapter.ParseFormat(opts.output)
		if err != nil {
			return err
		}
		format = f
	}

	// With --output the selection owns stdout, so the UI draws on stderr
	screen := os.Stdout
	if format != "" {
		screen = os.Stderr
	}

	if !term.IsTerminal(int(screen.Fd())) {
		a.logger.Info("no terminal, printing page instead", "page", opts.page)
		if format == "" {
			format = adapter.FormatTable
		}
		return a.printPage(cmd.Context(), cmd.OutOrStdout(), opts.page, format)
	}

	model := tui.NewModel(a.catalog, a.selection, tui.Options{
		StartPage: opts.page,
		MaxTarget: a.cfg.Selection.MaxTarget,
		Logger:    a.logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithOutput(screen),
		tea.WithContext(cmd.Context()),
	)

	a.logger.Info("starting TUI", "page", opts.page)

	final, err := p.Run()
	if err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok || format == "" {
		return nil
	}

	a.logger.Info("writing selection", "count", m.Selection.Len(), "format", format)
	return adapter.WriteArtworks(cmd.OutOrStdout(), m.Selected(), format, adapter.ExportMeta{
		TotalCount: m.TotalCount,
	})
}
