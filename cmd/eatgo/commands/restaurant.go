package commands

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"eatgo/internal/actions"
	"eatgo/internal/domain"
	"eatgo/internal/state"
)

// restaurant <id>: show one restaurant with its reviews.
func restaurantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restaurant <id>",
		Short: "Show a restaurant and its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Store.Run(cmd.Context(), appCtx.Restaurants.LoadRestaurant(id)); err != nil {
				return err
			}
			printRestaurant(cmd.OutOrStdout(), appCtx.Store.State())
			return nil
		},
	}
}

// review <id> --score <0-5> --description <text>: requires a prior login.
func reviewCmd() *cobra.Command {
	var (
		score       string
		description string
	)
	cmd := &cobra.Command{
		Use:   "review <id>",
		Short: "Post a review for a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			appCtx.Store.Dispatch(actions.ChangeReviewField("score", score))
			appCtx.Store.Dispatch(actions.ChangeReviewField("description", description))
			if err := appCtx.Store.Run(cmd.Context(), appCtx.Restaurants.SendReview(id)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Review posted (%d reviews)\n", len(appCtx.Store.State().RestaurantReviews))
			return nil
		},
	}
	cmd.Flags().StringVar(&score, "score", "", "score from 0 to 5")
	cmd.Flags().StringVar(&description, "description", "", "review text")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid restaurant id %q", s)
	}
	return id, nil
}

func printRestaurant(w io.Writer, st state.State) {
	r := st.Restaurant
	if r == nil {
		return
	}
	fmt.Fprintln(w, r.Name)
	fmt.Fprintln(w, r.Address)
	if r.Information != "" {
		fmt.Fprintln(w, r.Information)
	}

	reviews := slices.Clone(st.RestaurantReviews)
	slices.SortFunc(reviews, func(a, b domain.Review) int { return cmp.Compare(b.ID, a.ID) })

	fmt.Fprintf(w, "\n리뷰 (%d)\n", len(reviews))
	for _, rv := range reviews {
		fmt.Fprintf(w, "  %s  %d점  %s\n", rv.Name, rv.Score, rv.Description)
	}
}
