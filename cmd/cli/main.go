package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"plant-econ/internal/config"
	"plant-econ/internal/data"
	"plant-econ/internal/forecast"
	"plant-econ/internal/model"
	"plant-econ/internal/report"
	"plant-econ/internal/simulate"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "evaluate":
		cmdEvaluate(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "forecast":
		cmdForecast(os.Args[2:])
	case "backcast":
		cmdBackcast(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli evaluate --config examples/scenario.yaml [--params plant.json] [--schedules]")
	fmt.Println("  cli simulate --data data/prices_NY.json --config examples/scenario.yaml --out results/ledger.csv")
	fmt.Println("  cli forecast --region NY --hours 168 --method arima")
	fmt.Println("  cli backcast --data data/prices_NY.json --method moving_average --window 24")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - evaluate runs the full multi-year scenario and prints LCOE/NPV/IRR/payback")
	fmt.Println("  - simulate writes the per-hour ledger as CSV")
	fmt.Println("  - forecast methods: moving_average, arima, seasonal")
}

func cmdEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	paramsPath := fs.String("params", "", "Path to a flat JSON parameter file (overrides --config)")
	schedules := fs.Bool("schedules", false, "Print the yearly schedules as well")
	_ = fs.Parse(args)

	var params simulate.ScenarioParams
	switch {
	case *paramsPath != "":
		p, err := config.LoadParamsJSON(*paramsPath)
		if err != nil {
			panic(err)
		}
		params = p
	case *cfgPath != "":
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.ToScenarioParams()
	default:
		fmt.Println("--config or --params is required")
		os.Exit(2)
	}

	res, err := simulate.RunScenario(params)
	if err != nil {
		panic(err)
	}

	report.RenderScenario(os.Stdout, params, res)
	if *schedules {
		report.RenderSchedules(os.Stdout, res)
	}
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to a price series JSON file")
	cfgPath := fs.String("config", "", "Path to YAML config with plant parameters")
	outPath := fs.String("out", "results/ledger.csv", "Output CSV path")
	n := fs.Int("n", 0, "Optional: limit to first N hours (0=all)")
	_ = fs.Parse(args)

	if *dataPath == "" || *cfgPath == "" {
		fmt.Println("--data and --config are required")
		os.Exit(2)
	}

	series, err := data.LoadPriceJSON(*dataPath)
	if err != nil {
		panic(err)
	}
	if *n > 0 && *n < len(series) {
		series = series[:*n]
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	plant, err := model.NewPlant(cfg.Plant.ToModelParams())
	if err != nil {
		panic(err)
	}

	res, err := simulate.New().Run(series, plant)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := simulate.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	fmt.Printf("Total profit=$%.2f energy=%.0f MWh\n", res.TotalProfit, res.TotalEnergyMWh)
}

func cmdForecast(args []string) {
	fs := flag.NewFlagSet("forecast", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to a price series JSON file (skips the fetch)")
	region := fs.String("region", "NY", "RTO or pricing region")
	hours := fs.Int("hours", 24, "Hours of history to fetch")
	method := fs.String("method", "moving_average", "Forecast method: moving_average, arima, seasonal")
	window := fs.Int("window", forecast.DefaultWindow, "Moving average window")
	apiKey := fs.String("api-key", "", "EIA API key")
	secrets := fs.String("secrets", "secrets.json", "Path to a secrets JSON file")
	_ = fs.Parse(args)

	series := loadOrFetch(*dataPath, *region, *hours, *apiKey, *secrets)

	fn := mustForecastFunc(*method, *window)
	value, err := fn(series)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s forecast over %d points: %.4f\n", *method, len(series), value)
}

func cmdBackcast(args []string) {
	fs := flag.NewFlagSet("backcast", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to a price series JSON file (skips the fetch)")
	region := fs.String("region", "NY", "RTO or pricing region")
	hours := fs.Int("hours", 168, "Hours of history to fetch")
	method := fs.String("method", "moving_average", "Forecast method: moving_average, arima, seasonal")
	window := fs.Int("window", forecast.DefaultWindow, "Backcast window")
	apiKey := fs.String("api-key", "", "EIA API key")
	secrets := fs.String("secrets", "secrets.json", "Path to a secrets JSON file")
	_ = fs.Parse(args)

	series := loadOrFetch(*dataPath, *region, *hours, *apiKey, *secrets)

	rows, err := forecast.Backcast(series, mustForecastFunc(*method, *window), *window)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-25s %12s %12s %12s\n", "timestamp", "actual", "predicted", "error")
	for _, r := range rows {
		fmt.Printf("%-25s %12.4f %12.4f %12.4f\n",
			r.Timestamp.Format(time.RFC3339), r.Actual, r.Predicted, r.Error)
	}
}

func loadOrFetch(dataPath, region string, hours int, apiKey, secrets string) model.PriceSeries {
	if dataPath != "" {
		series, err := data.LoadPriceJSON(dataPath)
		if err != nil {
			panic(err)
		}
		return series
	}

	key, err := data.ResolveAPIKey(apiKey, secrets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	series, err := data.NewEIAClient(key, "").QueryRecent(ctx, region, hours)
	if err != nil {
		panic(err)
	}
	return series
}

func mustForecastFunc(method string, window int) forecast.ForecastFunc {
	switch method {
	case "moving_average":
		return func(s model.PriceSeries) (float64, error) {
			return forecast.MovingAverage(s, window)
		}
	case "arima":
		return forecast.NextHourARIMA
	case "seasonal":
		return forecast.NextDaySeasonal
	default:
		panic(fmt.Errorf("unsupported forecast method: %q", method))
	}
}
