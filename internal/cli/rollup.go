package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aevon-lab/rental-analytics/internal/aggregation"
	corecfg "github.com/aevon-lab/rental-analytics/internal/core/config"
	"github.com/aevon-lab/rental-analytics/internal/core/rollup"
	"github.com/aevon-lab/rental-analytics/internal/core/storage/documents"
	"github.com/spf13/cobra"
)

type rollupOptions struct {
	sourceDir   string
	at          string
	timezone    string
	format      string
	output      string
	bookingsKey string
	vehiclesKey string
	usersKey    string
}

func newRollupCommand() *cobra.Command {
	opts := rollupOptions{}
	def := documents.DefaultKeys()

	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Compute the rollup once over an exported directory of JSON documents",
		Example: `  rental-analytics rollup --source-dir ./export
  rental-analytics rollup --source-dir ./export --at 2026-03-31T23:59:59Z --format csv --output march.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if opts.output != "" {
				f, err := os.Create(opts.output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			return runRollup(cmd.Context(), opts, out, time.Now)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.sourceDir, "source-dir", "s", "", "Directory holding bookings.json, adminCars.json and adminUsers.json")
	flags.StringVar(&opts.at, "at", "", "Reference time (RFC3339); defaults to now")
	flags.StringVarP(&opts.timezone, "timezone", "z", "UTC", "IANA timezone used for month and day buckets")
	flags.StringVarP(&opts.format, "format", "f", FormatTable, "Output format: table, json, yaml, csv")
	flags.StringVarP(&opts.output, "output", "o", "", "Write the report to this file instead of stdout")
	flags.StringVar(&opts.bookingsKey, "bookings-key", def.Bookings, "Document key holding bookings")
	flags.StringVar(&opts.vehiclesKey, "vehicles-key", def.Vehicles, "Document key holding vehicles")
	flags.StringVar(&opts.usersKey, "users-key", def.Users, "Document key holding users")
	_ = cmd.MarkFlagRequired("source-dir")

	return cmd
}

func runRollup(ctx context.Context, opts rollupOptions, out io.Writer, now func() time.Time) error {
	format := strings.ToLower(opts.format)
	if !ValidFormat(format) {
		return fmt.Errorf("unsupported format %q (want one of %s)", opts.format, strings.Join(Formats, ", "))
	}

	loc, err := corecfg.RollupConfig{Timezone: opts.timezone}.Location()
	if err != nil {
		return err
	}

	ref := now().In(loc)
	if opts.at != "" {
		at, err := time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return fmt.Errorf("invalid --at %q: %w", opts.at, err)
		}
		ref = at.In(loc)
	}

	store, err := documents.NewFileStore(opts.sourceDir)
	if err != nil {
		return err
	}
	source := documents.NewSource(store, documents.Keys{
		Bookings: opts.bookingsKey,
		Vehicles: opts.vehiclesKey,
		Users:    opts.usersKey,
	})

	fleet, err := aggregation.LoadFleet(ctx, source)
	if err != nil {
		return fmt.Errorf("load fleet: %w", err)
	}

	fingerprint, err := rollup.Fingerprint(fleet.Bookings, fleet.Vehicles, fleet.Users, ref, loc)
	if err != nil {
		return err
	}

	result := rollup.NewEngine(loc).Compute(fleet.Bookings, fleet.Vehicles, fleet.Users, ref)
	return WriteReport(out, format, Report{
		ReferenceTime: ref,
		Timezone:      loc.String(),
		Fingerprint:   fingerprint,
		Result:        result,
		Summary:       rollup.Summarize(result),
	})
}
