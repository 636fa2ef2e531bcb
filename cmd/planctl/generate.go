package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/planner"
	"github.com/pkordes/trip-planner/backend/internal/service"
)

type generateOptions struct {
	catalog       string
	tables        string
	locale        string
	destination   int64
	days          int
	budget        float64
	interests     []string
	accommodation string
	tier          string
	seed          uint64
	verbose       bool
}

func newGenerateCmd() *cobra.Command {
	var o generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan from a YAML catalog and print it as JSON",
		Example: `  planctl generate --snapshot catalog.yaml --destination 1 --days 3 \
      --budget 6000 --interest food --interest temple --accommodation mid --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.catalog, "snapshot", "", "YAML catalog of destinations, activities and accommodations")
	f.StringVar(&o.tables, "tables", "", "YAML file with planner table overrides")
	f.StringVar(&o.locale, "locale", "en", "locale for destination names")
	f.Int64Var(&o.destination, "destination", 0, "destination id")
	f.IntVar(&o.days, "days", 1, "trip length in days")
	f.Float64Var(&o.budget, "budget", 0, "total trip budget")
	f.StringArrayVar(&o.interests, "interest", nil, "interest tag (repeatable)")
	f.StringVar(&o.accommodation, "accommodation", string(domain.ClassMid), "accommodation class: luxury, mid or economy")
	f.StringVar(&o.tier, "tier", string(domain.TierFree), "subscription tier: free, smart or professional")
	f.Uint64Var(&o.seed, "seed", 0, "random seed; 0 picks a fresh one")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log plan summaries to stderr")
	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}

func runGenerate(cmd *cobra.Command, o generateOptions) error {
	tables, err := planner.LoadTables(o.tables)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(o.catalog)
	if err != nil {
		return err
	}

	engineOpts := []planner.Option{planner.WithLocale(o.locale)}
	if o.seed != 0 {
		engineOpts = append(engineOpts, planner.WithSeed(o.seed))
	}

	logger := slog.New(slog.DiscardHandler)
	if o.verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	plans := service.NewPlanService(
		cat,
		activityCatalog{cat},
		accommodationCatalog{cat},
		scratchTrips{},
		planner.NewEngine(tables, engineOpts...),
		service.WithLogger(logger),
	)

	trip, err := plans.Generate(cmd.Context(),
		domain.Requester{ID: "planctl", Tier: domain.Tier(o.tier)},
		domain.TripRequest{
			DestinationID: o.destination,
			Days:          o.days,
			TotalBudget:   o.budget,
			Interests:     o.interests,
			Accommodation: domain.AccommodationClass(o.accommodation),
		})
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, trip.Plan, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = cmd.OutOrStdout().Write(out.Bytes())
	return err
}
