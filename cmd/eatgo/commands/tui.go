package commands

import (
	"github.com/spf13/cobra"

	"eatgo/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), appCtx.Store, tui.Commands{
				Catalog:     appCtx.Catalog,
				Restaurants: appCtx.Restaurants,
				Session:     appCtx.Session,
			})
		},
	}
}
