package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"happenly/internal/adapters/seedsource"
	"happenly/internal/services"
)

var (
	seedFile string
	seedURL  string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load categories and demo events",
	Long:  "Writes categories and events from a YAML file or URL, or the bundled demo data when neither is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadSeedData(cmd.Context(), seedFile, seedURL)
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		events, categories := a.eventService()
		result, err := services.NewSeeder(a.logger, events, categories).Seed(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d categories and %d events\n", result.Categories, len(result.EventIDs))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML seed file")
	seedCmd.Flags().StringVar(&seedURL, "url", "", "URL of a YAML seed file")
}

func loadSeedData(ctx context.Context, path, url string) (*services.SeedData, error) {
	switch {
	case path != "" && url != "":
		return nil, errors.New("use either --file or --url, not both")
	case url != "":
		body, err := seedsource.NewHTTPFetcher(nil).Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		return services.ParseSeedData(bytes.NewReader(body))
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open seed file: %w", err)
		}
		defer f.Close()
		return services.ParseSeedData(f)
	default:
		return services.DefaultSeedData()
	}
}
