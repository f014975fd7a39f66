package cmd

import (
	"github.com/parentfeel/parentfeel-cli/internal/adapters/render/journal"
	"github.com/parentfeel/parentfeel-cli/internal/application"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var (
		rawRange    string
		rawCategory string
		limit       int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded emotions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := domain.ParseTimeRange(rawRange)
			if err != nil {
				return err
			}

			query := application.ListRecordsQuery{Range: timeRange, Limit: limit}
			if rawCategory != "" {
				category, err := domain.ParseEmotionCategory(rawCategory)
				if err != nil {
					return err
				}
				query.Category = &category
			}

			records, err := app.journal.ListRecords(cmd.Context(), query)
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]recordJSON, 0, len(records))
				for _, record := range records {
					out = append(out, toRecordJSON(record))
				}
				return writeJSON(cmd, out)
			}

			rendered, err := journal.RenderRecords(records, app.render)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().StringVar(&rawRange, "range", string(domain.TimeRangeAll), "Time range: week, month, three-months or all")
	cmd.Flags().StringVar(&rawCategory, "category", "", "Only show one emotion category")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of records to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")

	return cmd
}

func newShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded emotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.journal.ResolveID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			detail, err := app.journal.GetRecord(cmd.Context(), id)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, toRecordJSON(detail.Record))
			}

			rendered, err := journal.RenderDetail(detail)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the record as JSON")

	return cmd
}
