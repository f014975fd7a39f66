package cmd

import (
	"github.com/parentfeel/parentfeel-cli/internal/adapters/render/journal"
	"github.com/spf13/cobra"
)

func newEmotionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emotions",
		Short: "List emotion types by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := journal.RenderEmotions()
			return writeRendered(cmd, rendered, err)
		},
	}
}
