package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"plant-econ/internal/data"
)

func main() {
	_ = godotenv.Load()

	region := flag.String("region", "NY", "RTO or pricing region (e.g. NY, PJM)")
	hours := flag.Int("hours", 24, "Hours of history to retrieve")
	apiKey := flag.String("api-key", "", "EIA API key (falls back to EIA_API_KEY, then --secrets)")
	secrets := flag.String("secrets", "secrets.json", "Path to a secrets JSON file")
	outPath := flag.String("out", "", "Output JSON path (default data/prices_<region>.json)")
	flag.Parse()

	key, err := data.ResolveAPIKey(*apiKey, *secrets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := data.NewEIAClient(key, "")
	series, err := client.QueryRecent(ctx, *region, *hours)
	if err != nil {
		panic(err)
	}
	if len(series) == 0 {
		fmt.Fprintf(os.Stderr, "no data returned for region %s\n", *region)
		os.Exit(1)
	}

	path := *outPath
	if path == "" {
		path = filepath.Join("data", fmt.Sprintf("prices_%s.json", *region))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := data.SavePriceJSON(path, series); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d price points to %s (%s .. %s)\n",
		len(series), path,
		series[0].Timestamp.Format(time.RFC3339),
		series[len(series)-1].Timestamp.Format(time.RFC3339))
}
