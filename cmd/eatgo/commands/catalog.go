package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"eatgo/internal/domain"
)

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Store.Run(cmd.Context(), appCtx.Catalog.LoadInitialData()); err != nil {
				return err
			}
			t := table.New().Headers("ID", "REGION")
			for _, r := range appCtx.Store.State().Regions {
				t.Row(strconv.FormatInt(r.ID, 10), r.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Store.Run(cmd.Context(), appCtx.Catalog.LoadInitialData()); err != nil {
				return err
			}
			t := table.New().Headers("ID", "CATEGORY")
			for _, c := range appCtx.Store.State().Categories {
				t.Row(strconv.FormatInt(c.ID, 10), c.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

// restaurants --region <name> --category <id>
func restaurantsCmd() *cobra.Command {
	var (
		regionName string
		categoryID int64
	)
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants for a region and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := appCtx.Store.Run(ctx, appCtx.Catalog.LoadInitialData()); err != nil {
				return err
			}

			region, ok := findRegion(appCtx.Store.State().Regions, regionName)
			if !ok {
				return fmt.Errorf("unknown region %q", regionName)
			}
			if err := appCtx.Store.Run(ctx, appCtx.Catalog.SelectRegion(region.ID)); err != nil {
				return err
			}
			if err := appCtx.Store.Run(ctx, appCtx.Catalog.SelectCategory(categoryID)); err != nil {
				return err
			}
			if appCtx.Store.State().SelectedCategory == nil {
				return fmt.Errorf("unknown category %d", categoryID)
			}

			t := table.New().Headers("ID", "NAME", "ADDRESS")
			for _, r := range appCtx.Store.State().Restaurants {
				t.Row(strconv.FormatInt(r.ID, 10), r.Name, r.Address)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&regionName, "region", "", "region name, e.g. 서울")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category id")
	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func findRegion(regions []domain.Region, name string) (domain.Region, bool) {
	for _, r := range regions {
		if r.Name == name {
			return r, true
		}
	}
	return domain.Region{}, false
}
