package cmd

import (
	"fmt"

	"github.com/parentfeel/parentfeel-cli/internal/adapters/render/journal"
	"github.com/parentfeel/parentfeel-cli/internal/application"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/selection"
	"github.com/spf13/cobra"
)

type actionsOutput struct {
	cmd    *cobra.Command
	asJSON bool
}

func newActionsCmd(app *app) *cobra.Command {
	var (
		rawCategory string
		search      string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:       "actions <child|parent>",
		Short:     "List child or parent actions, filtered by category and search text",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.DomainChild), string(domain.DomainParent)},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := domain.ParseDomain(args[0])
			if err != nil {
				return err
			}
			category, err := domain.ParseActionCategory(rawCategory)
			if err != nil {
				return err
			}

			out := actionsOutput{cmd: cmd, asJSON: asJSON}
			return app.withPicker(func(pickers *application.PickerService) error {
				switch d {
				case domain.DomainChild:
					return writeFiltered(out, domain.ChildCatalog(), pickers.ChildState(cmd.Context()), category, search)
				default:
					return writeFiltered(out, domain.ParentCatalog(), pickers.ParentState(cmd.Context()), category, search)
				}
			})
		},
	}

	cmd.Flags().StringVar(&rawCategory, "category", string(domain.ActionCategoryAll), "Category: all, positive, negative, neutral or recent")
	cmd.Flags().StringVar(&search, "search", "", "Only show actions whose label contains this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print actions as JSON")

	cmd.AddCommand(newActionsRecentCmd(app))

	return cmd
}

func newActionsRecentCmd(app *app) *cobra.Command {
	var (
		clearRecent bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "recent <child|parent>",
		Short: "Show the most recently chosen actions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := domain.ParseDomain(args[0])
			if err != nil {
				return err
			}

			out := actionsOutput{cmd: cmd, asJSON: asJSON}
			return app.withPicker(func(pickers *application.PickerService) error {
				if clearRecent {
					if err := pickers.ClearRecent(cmd.Context(), d); err != nil {
						return err
					}
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "Cleared recent %s actions\n", d)
					return err
				}

				switch d {
				case domain.DomainChild:
					return writeActions(out, "Recent child actions", domain.ChildCatalog(), pickers.RecentChildActions(cmd.Context()))
				default:
					return writeActions(out, "Recent parent actions", domain.ParentCatalog(), pickers.RecentParentActions(cmd.Context()))
				}
			})
		},
	}

	cmd.Flags().BoolVar(&clearRecent, "clear", false, "Forget the recent list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print actions as JSON")

	return cmd
}

func writeFiltered[T domain.Action](out actionsOutput, catalog domain.Catalog[T], state *selection.State[T], category domain.ActionCategory, search string) error {
	state.SetCategory(category)
	state.SetSearchText(search)

	title := fmt.Sprintf("%s actions (%s)", state.Domain().Name(), category.Label())
	return writeActions(out, title, catalog, state.FilteredActions())
}

func writeActions[T domain.Action](out actionsOutput, title string, catalog domain.Catalog[T], actions []T) error {
	if out.asJSON {
		return writeJSON(out.cmd, toActionsJSON(catalog, actions))
	}

	rendered, err := journal.RenderActions(title, catalog, actions)
	return writeRendered(out.cmd, rendered, err)
}
