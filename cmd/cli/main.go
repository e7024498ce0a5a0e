package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"power-bidding/internal/bidding"
	"power-bidding/internal/config"
	"power-bidding/internal/forecast"
	"power-bidding/internal/pipeline"
	"power-bidding/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "pipeline":
		cmdPipeline(os.Args[2:])
	case "status":
		cmdStatus(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli pipeline --data prices.csv[,more.csv] --horizon 24 --confidence 0.95 --cost 50 --out results/schedule.csv")
	fmt.Println("  cli status --data prices.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - pipeline forecasts from the most recent window, then derives a bid schedule")
	fmt.Println("  - sources may be CSV or JSON; --config overrides flags where set")
}

func cmdPipeline(args []string) {
	fs := flag.NewFlagSet("pipeline", flag.ExitOnError)
	dataPaths := fs.String("data", "", "Comma-separated source files (CSV or JSON)")
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional: write the bid schedule as CSV")
	horizon := fs.Int("horizon", 24, "Number of 15-minute forecast points")
	confidence := fs.Float64("confidence", 0.95, "Confidence level in (0,1)")
	costGen := fs.Float64("cost", 50, "Generation cost per MWh")
	startStr := fs.String("start", "", "Forecast start, RFC3339 (default: now)")
	_ = fs.Parse(args)

	cfg, sources := resolveConfig(*cfgPath, *dataPaths)
	if len(sources) == 0 {
		fmt.Println("--data or config sources are required")
		os.Exit(2)
	}

	st := store.New()
	n, err := st.Load(sources)
	if err != nil {
		log.Fatal().Err(err).Msg("load failed")
	}
	log.Info().Int("observations", n).Msg("historical data loaded")

	start := time.Now()
	if *startStr != "" {
		start, err = time.Parse(time.RFC3339, *startStr)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid --start")
		}
	}

	cost := cfg.Cost.ToCostModel()
	costFlagSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "cost" {
			costFlagSet = true
		}
	})
	if costFlagSet || cost.GenerationCost == 0 {
		cost.GenerationCost = *costGen
	}

	noise := forecast.NewNoise()
	pl := pipeline.New(st, forecast.New(noise), noise, cfg.Forecast.WindowSize)
	result, err := pl.Run(forecast.Request{
		Start:           start,
		Horizon:         *horizon,
		ConfidenceLevel: *confidence,
	}, cost)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}

	printResult(result)

	if *outPath != "" {
		if err := bidding.WriteScheduleCSV(*outPath, result.Bids.Decisions); err != nil {
			log.Fatal().Err(err).Str("path", *outPath).Msg("schedule export failed")
		}
		fmt.Printf("schedule written to %s\n", *outPath)
	}
}

func cmdStatus(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	dataPaths := fs.String("data", "", "Comma-separated source files (CSV or JSON)")
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	_, sources := resolveConfig(*cfgPath, *dataPaths)
	if len(sources) == 0 {
		fmt.Println("--data or config sources are required")
		os.Exit(2)
	}

	st := store.New()
	if _, err := st.Load(sources); err != nil {
		log.Fatal().Err(err).Msg("load failed")
	}

	sum := st.Status()
	fmt.Printf("observations: %d\n", sum.Count)
	if sum.Count > 0 {
		fmt.Printf("earliest:     %s\n", sum.Earliest.Format(time.RFC3339))
		fmt.Printf("latest:       %s\n", sum.Latest.Format(time.RFC3339))
	}
	months := make([]string, 0, len(sum.ByMonth))
	for m := range sum.ByMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		fmt.Printf("  %s: %d\n", m, sum.ByMonth[m])
	}
}

func resolveConfig(cfgPath, dataPaths string) (*config.Config, []string) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfgPath).Msg("config load failed")
		}
		cfg = loaded
	}
	sources := cfg.Sources
	if dataPaths != "" {
		sources = strings.Split(dataPaths, ",")
	}
	return cfg, sources
}

func printResult(result *pipeline.Result) {
	fc := result.Forecast
	bids := result.Bids

	fmt.Printf("run %s\n", fc.RunID)
	fmt.Printf("forecast: %d points, mean price %.2f, confidence %.2f, accuracy %.3f\n",
		fc.Summary.Points, fc.Summary.MeanPrice, fc.Summary.ConfidenceLevel, fc.Accuracy)
	fmt.Printf("bidding:  profit %.2f, avg capacity %.1f MW, strategy %s, risk %s\n",
		bids.TotalProfit, bids.AvgCapacity, bids.Strategy, bids.RiskLevel)

	show := len(bids.Decisions)
	if show > 8 {
		show = 8
	}
	for _, d := range bids.Decisions[:show] {
		fmt.Printf("  %s  bid %.2f @ %.0f MW  (predicted %.2f, profit %.2f)\n",
			d.TimePeriod.Format("2006-01-02 15:04"), d.BidPrice, d.BidCapacity,
			d.PredictedPrice, d.ExpectedProfit)
	}
	if show < len(bids.Decisions) {
		fmt.Printf("  ... %d more periods\n", len(bids.Decisions)-show)
	}
}
