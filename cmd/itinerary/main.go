// Package main is the offline companion CLI for saved trips: it reconciles a
// trip blob exported from the server (or the browser's storage) and prints
// summary statistics, without a database.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/geo"
	"github.com/pkordes/euro-itinerary/internal/itinerary"
	"github.com/pkordes/euro-itinerary/internal/summary"
)

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. now is the clock used by stats.
func newRootCmd(now func() time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:           "itinerary",
		Short:         "Inspect and repair saved Euro Itinerary trips",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReconcileCmd(), newStatsCmd(now))
	return root
}

func newReconcileCmd() *cobra.Command {
	var (
		file  string
		write bool
	)
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-derive the day plans of a saved trip from its country visits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trip, err := readTrip(file)
			if err != nil {
				return err
			}

			out, changed := itinerary.Reconcile(trip)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "window:  %s → %s\n", out.ArrivalDate, out.DepartureDate)
			fmt.Fprintf(w, "days:    %d\n", len(out.DailyPlans))
			fmt.Fprintf(w, "changed: %t\n", changed)

			if !write || !changed {
				return nil
			}
			if err := writeTrip(file, out); err != nil {
				return err
			}
			fmt.Fprintf(w, "wrote %s\n", file)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Path to the saved trip JSON")
	cmd.Flags().BoolVar(&write, "write", false, "Write the reconciled trip back to --file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newStatsCmd(now func() time.Time) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print days per country and the route of a saved trip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trip, err := readTrip(file)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), trip, now())
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Path to the saved trip JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printStats(w io.Writer, trip domain.TripData, now time.Time) {
	fmt.Fprintf(w, "window: %s → %s (%d days)\n", trip.ArrivalDate, trip.DepartureDate, len(trip.DailyPlans))
	if days, ok := summary.Countdown(trip.ArrivalDate, now); ok {
		fmt.Fprintf(w, "starts in %d days\n", days)
	} else if summary.IsActive(trip.Window(), now) {
		fmt.Fprintln(w, "trip in progress")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nCOUNTRY\tDAYS")
	for _, s := range summary.CountryStats(trip.DailyPlans) {
		fmt.Fprintf(tw, "%s\t%d\n", s.Country, s.Days)
	}
	_ = tw.Flush()

	fmt.Fprintln(w, "\nroute:")
	for i, m := range summary.Route(trip.Countries, geo.Europe()) {
		fmt.Fprintf(w, "  %d. %s (%.4f, %.4f)\n", i+1, m.Label, m.Point.Lat, m.Point.Lon)
	}
}

func readTrip(path string) (domain.TripData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.TripData{}, fmt.Errorf("read trip: %w", err)
	}
	var trip domain.TripData
	if err := json.Unmarshal(raw, &trip); err != nil {
		return domain.TripData{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return trip.Normalize(), nil
}

func writeTrip(path string, trip domain.TripData) error {
	raw, err := json.MarshalIndent(trip, "", "  ")
	if err != nil {
		return fmt.Errorf("encode trip: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write trip: %w", err)
	}
	return nil
}
