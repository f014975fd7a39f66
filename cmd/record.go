package cmd

import (
	"context"
	"fmt"

	pickeradapter "github.com/parentfeel/parentfeel-cli/internal/adapters/render/picker"
	"github.com/parentfeel/parentfeel-cli/internal/application"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/spf13/cobra"
)

type recordFlags struct {
	emotion       string
	childActions  []string
	parentActions []string
	notes         string
	trigger       string
	alternative   string
	pick          bool
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.emotion, "emotion", "", "Emotion slug (see `pf emotions`)")
	cmd.Flags().StringSliceVar(&f.childActions, "child", nil, "Child actions, comma separated slugs")
	cmd.Flags().StringSliceVar(&f.parentActions, "parent", nil, "Your actions, comma separated slugs")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&f.trigger, "trigger", "", "What set the feeling off")
	cmd.Flags().StringVar(&f.alternative, "alternative", "", "What you would like to do next time")
	cmd.Flags().BoolVar(&f.pick, "pick", false, "Choose child and parent actions interactively")
}

// parsedActions keeps the order actions were typed in, which is the order
// they enter the recent lists. Records store them in catalog order.
type parsedActions struct {
	child  []domain.ChildAction
	parent []domain.ParentAction
}

func (f *recordFlags) parseActions() (parsedActions, error) {
	child, err := domain.ChildCatalog().ParseSlugs(f.childActions)
	if err != nil {
		return parsedActions{}, err
	}
	parent, err := domain.ParentCatalog().ParseSlugs(f.parentActions)
	if err != nil {
		return parsedActions{}, err
	}

	return parsedActions{child: child, parent: parent}, nil
}

func newRecordCmd(app *app) *cobra.Command {
	flags := &recordFlags{}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record an emotion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			emotion, err := domain.ParseEmotionType(flags.emotion)
			if err != nil {
				return err
			}

			actions, err := flags.parseActions()
			if err != nil {
				return err
			}

			actions, err = app.selectActions(cmd, actions, flags.pick)
			if err != nil {
				return err
			}

			record, err := app.journal.RecordEmotion(cmd.Context(), application.RecordEmotionCommand{
				Emotion:       emotion,
				ChildActions:  actions.child,
				ParentActions: actions.parent,
				Notes:         flags.notes,
				Reflection:    domain.Reflection{Trigger: flags.trigger, Alternative: flags.alternative},
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s (%s)\n", record.Emotion.Emoji(), record.Emotion.Label(), record.ID)
			return err
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("emotion")

	return cmd
}

func newEditCmd(app *app) *cobra.Command {
	flags := &recordFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recorded emotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.journal.ResolveID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			update := application.UpdateEmotionCommand{ID: id}
			changed := cmd.Flags().Changed

			if changed("emotion") {
				emotion, err := domain.ParseEmotionType(flags.emotion)
				if err != nil {
					return err
				}
				update.Emotion = &emotion
			}

			actions, err := flags.parseActions()
			if err != nil {
				return err
			}
			if flags.pick {
				current, err := app.journal.GetRecord(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !changed("child") {
					actions.child = current.Record.ChildActions
				}
				if !changed("parent") {
					actions.parent = current.Record.ParentActions
				}
			}

			actions, err = app.selectActions(cmd, actions, flags.pick)
			if err != nil {
				return err
			}
			if changed("child") || flags.pick {
				update.ChildActions = &actions.child
			}
			if changed("parent") || flags.pick {
				update.ParentActions = &actions.parent
			}
			if changed("notes") {
				update.Notes = &flags.notes
			}
			if changed("trigger") {
				update.Trigger = &flags.trigger
			}
			if changed("alternative") {
				update.Alternative = &flags.alternative
			}

			record, err := app.journal.UpdateEmotion(cmd.Context(), update)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s (%s)\n", record.Emotion.Emoji(), record.Emotion.Label(), record.ID)
			return err
		},
	}

	flags.register(cmd)

	return cmd
}

// selectActions runs the interactive pickers when pick is set. Otherwise the
// actions given on the command line are added to the recent lists, the same
// way choosing them in the picker would.
func (a *app) selectActions(cmd *cobra.Command, actions parsedActions, pick bool) (parsedActions, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if !pick && len(actions.child) == 0 && len(actions.parent) == 0 {
		return actions, nil
	}

	err := a.withPicker(func(pickers *application.PickerService) error {
		if !pick {
			child := pickers.ChildState(ctx)
			for _, action := range actions.child {
				child.Insert(ctx, action)
			}
			parent := pickers.ParentState(ctx)
			for _, action := range actions.parent {
				parent.Insert(ctx, action)
			}
			return nil
		}

		child, ok, err := pickeradapter.Run(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), "What did your child do?", pickers.ChildState(ctx, actions.child...))
		if err != nil {
			return err
		}
		if ok {
			actions.child = child
		}

		parent, ok, err := pickeradapter.Run(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), "What did you do?", pickers.ParentState(ctx, actions.parent...))
		if err != nil {
			return err
		}
		if ok {
			actions.parent = parent
		}

		return nil
	})

	return actions, err
}
