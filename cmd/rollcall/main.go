// Package main provides the CLI entry point for the roll call assistant.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rondou/blisswisdom-roll-call-assistant/internal/config"
	"github.com/rondou/blisswisdom-roll-call-assistant/pkg/rollcall"
	"github.com/rondou/blisswisdom-roll-call-assistant/pkg/rollcall/grid"
)

var (
	configPath string
	xlsxPath   string
	sheetURL   string
	outputPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rollcall [date]",
		Short: "Extract attendance records from a roll call sheet",
		Long: `rollcall detects which known layout an attendance sheet uses
(roster matrix or form log) and extracts every member's attendance
record for the given class date (YYYY/MM/DD or MM/DD/YYYY).`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Local workbook snapshot (overrides config)")
	rootCmd.Flags().StringVar(&sheetURL, "sheet", "", "Remote spreadsheet URL (overrides config)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	date, err := rollcall.ParseFlexibleDate(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	g, cleanup, err := openGrid(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	parser, err := rollcall.Build(g)
	if err != nil {
		return fmt.Errorf("failed to build parser: %w", err)
	}

	records, err := parser.Records(date)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Info("extracted attendance records", "date", args[0], "count", len(records))

	return writeRecords(records)
}

func loadConfig() (*config.Config, error) {
	godotenv.Load()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if xlsxPath != "" {
		cfg.XLSXPath = xlsxPath
	}
	if sheetURL != "" {
		cfg.SheetURL = sheetURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openGrid(ctx context.Context, cfg *config.Config) (grid.Grid, func(), error) {
	if cfg.XLSXPath != "" {
		g, err := grid.OpenXLSX(cfg.XLSXPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		return g, func() { g.Close() }, nil
	}

	creds := grid.SheetsCredentials{
		PrivateKeyID: os.Getenv(cfg.PrivateKeyIDEnv),
		PrivateKey:   os.Getenv(cfg.PrivateKeyEnv),
	}
	if creds.PrivateKeyID == "" || creds.PrivateKey == "" {
		return nil, nil, fmt.Errorf("missing credentials: set %s and %s", cfg.PrivateKeyIDEnv, cfg.PrivateKeyEnv)
	}

	g, err := grid.OpenSheet(ctx, cfg.SheetURL, creds)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sheet: %w", err)
	}
	return g, func() {}, nil
}

func writeRecords(records []rollcall.Record) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(records, "", "  ")
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}
