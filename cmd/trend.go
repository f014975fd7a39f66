package cmd

import (
	"github.com/parentfeel/parentfeel-cli/internal/adapters/render/journal"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTrendCmd(app *app) *cobra.Command {
	var (
		rawRange string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Summarize emotions over a time range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := domain.ParseTimeRange(rawRange)
			if err != nil {
				return err
			}

			report, err := app.journal.Trend(cmd.Context(), timeRange)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, toTrendJSON(report))
			}

			rendered, err := journal.RenderTrend(report, app.render)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().StringVar(&rawRange, "range", string(domain.TimeRangeWeek), "Time range: week, month, three-months or all")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the trend as JSON")

	return cmd
}
