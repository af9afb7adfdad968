package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/envelope-zero/cashflow/internal/forecast"
	"github.com/envelope-zero/cashflow/internal/importer"
	"github.com/envelope-zero/cashflow/internal/models"
	"github.com/envelope-zero/cashflow/internal/storage"
	"github.com/envelope-zero/cashflow/internal/types"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type config struct {
	verbose  bool
	filePath string
	database string
	months   int
	taxRate  string
	filter   string
}

func parseFlags() config {
	var cfg config

	for _, name := range []string{"verbose", "v"} {
		flag.BoolVar(&cfg.verbose, name, false, "echo each parsed cash event before the report")
	}
	for _, name := range []string{"cash-events-file-path", "c"} {
		flag.StringVar(&cfg.filePath, name, envOrDefault("CASH_EVENTS_FILE", "data/cash_events.csv"), "path to the cash events CSV file")
	}
	for _, name := range []string{"database", "d"} {
		flag.StringVar(&cfg.database, name, envOrDefault("CASH_EVENTS_DB", ""), "load cash events from this sqlite database instead of the CSV file")
	}
	for _, name := range []string{"months", "m"} {
		flag.IntVar(&cfg.months, name, 12, "projection horizon in months")
	}
	for _, name := range []string{"tax-rate", "t"} {
		flag.StringVar(&cfg.taxRate, name, envOrDefault("TAX_RATE", "0.169"), "flat tax rate applied to taxable events, 0.0-1.0")
	}
	for _, name := range []string{"filter", "f"} {
		flag.StringVar(&cfg.filter, name, "", "only project events whose name matches this glob pattern")
	}
	flag.Parse()

	return cfg
}

func envOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	cfg := parseFlags()

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stderr)
	if !ok || logFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	// The report goes to stdout, logs go to stderr. Without verbose,
	// only warnings and errors are logged
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	taxRate, err := decimal.NewFromString(cfg.taxRate)
	if err != nil {
		log.Fatal().Msgf("invalid tax rate %q: %s", cfg.taxRate, err)
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		log.Fatal().Msgf("invalid tax rate %s: must be between 0.0 and 1.0", taxRate)
	}

	if cfg.months < 0 {
		log.Fatal().Msgf("invalid horizon: %d months", cfg.months)
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end, err := types.AddMonths(start, cfg.months)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	events, err := loadEvents(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	for _, event := range events {
		log.Info().
			Str("amount", event.Amount.String()).
			Stringer("frequency", event.Frequency).
			Str("type", string(event.Type)).
			Bool("taxable", event.Taxable).
			Msg(event.Name)
	}

	events = forecast.Filter(events, cfg.filter)

	lines := forecast.Project(events, types.FirstOfMonthsBetween(start, end), taxRate)
	err = forecast.Write(os.Stdout, lines)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// loadEvents reads the cash events from the configured source. The
// sqlite database takes precedence over the CSV file when both are set.
func loadEvents(cfg config) ([]models.CashEvent, error) {
	if cfg.database != "" {
		return storage.Load(cfg.database)
	}

	f, err := os.Open(cfg.filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return importer.Parse(f)
}
