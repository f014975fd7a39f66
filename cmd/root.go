package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pf",
		Short:         "ParentFeel (pf): a caregiver's emotion journal",
		Long:          "pf records how you felt while caring for your child, what the child did and how you responded, and shows trends over time.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(os.Stderr)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.Close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRecordCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newTrendCmd(app),
		newActionsCmd(app),
		newEmotionsCmd(),
	)

	return rootCmd
}
