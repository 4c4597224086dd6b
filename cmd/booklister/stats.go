package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := newService().Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total books:    %d\n", stats.TotalBooks)
			fmt.Fprintf(out, "Average rating: %.1f\n\n", stats.AverageRating)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GENRE\tBOOKS\tSHARE")
			for _, genre := range stats.GenreDistribution {
				share := 0.0
				if stats.TotalBooks > 0 {
					share = float64(genre.Count) / float64(stats.TotalBooks) * 100
				}
				fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", genre.Genre, genre.Count, share)
			}
			tw.Flush()
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user API_TOKEN belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := newService().Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
}
