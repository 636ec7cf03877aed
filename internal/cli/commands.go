package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"marketdeck/internal/logger"
	"marketdeck/internal/server"
	"marketdeck/internal/snapshot"
	"marketdeck/internal/trace"
)

const serviceName = "marketdeck"

// Version is stamped via -ldflags on release builds; the default covers
// plain go build.
var Version = "0.1.0"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "marketdeck",
		Short: "marketdeck - deterministic market dashboard backend",
		Long: `marketdeck serves a browser dashboard with synthetic OHLCV history,
technical indicators, toy strategy backtests, and curated sentiment for a
small equity universe. Every series is generated deterministically at
startup, so no market connection or API key is required.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newSymbolsCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Configuration file path (built-in defaults when omitted)")

	return rootCmd
}

// newServeCmd creates the serve command
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Long: `Generate the synthetic catalog and serve the dashboard API until
interrupted. Example: marketdeck serve --addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			addr, _ := cmd.Flags().GetString("addr")
			return runServe(configPath, addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides the configured one)")

	return cmd
}

// newSnapshotCmd creates the snapshot command
func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot SYMBOL",
		Short: "Print one symbol's dashboard snapshot as JSON",
		Long: `Build the full snapshot for a symbol and print it to stdout.
Example: marketdeck snapshot AAPL --lookback 90 --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			lookback, _ := cmd.Flags().GetInt("lookback")
			capital, _ := cmd.Flags().GetFloat64("capital")
			pretty, _ := cmd.Flags().GetBool("pretty")
			return runSnapshot(configPath, strings.ToUpper(args[0]), lookback, capital, pretty)
		},
	}

	cmd.Flags().Int("lookback", 0, "Trading days in the analysis window (config default when 0)")
	cmd.Flags().Float64("capital", 0, "Starting capital for strategy simulation (config default when 0)")
	cmd.Flags().Bool("pretty", false, "Indent the JSON output")

	return cmd
}

// newSymbolsCmd creates the symbols command
func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the configured symbol universe",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runSymbols(configPath)
		},
	}
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("marketdeck %s\n", Version)
		},
	}
}

// runServe wires the full system and blocks until shutdown
func runServe(configPath, addrOverride string) error {
	if err := initializeSystem(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, asm, err := buildAssembler(ctx, configPath)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if addrOverride != "" {
		addr = addrOverride
	}

	router := server.NewRouter(asm, cfg.Server.CORSOrigins)
	err = server.Serve(ctx, addr, router)

	if terr := trace.Shutdown(context.Background()); terr != nil {
		logger.Warn(context.Background(), "Tracer shutdown failed", "error", terr)
	}
	return err
}

// runSnapshot builds a single snapshot and prints it
func runSnapshot(configPath, symbol string, lookback int, capital float64, pretty bool) error {
	initializeQuiet()
	ctx := context.Background()

	_, asm, err := buildAssembler(ctx, configPath)
	if err != nil {
		return err
	}

	snap := asm.Snapshot(ctx, symbol, snapshot.Options{LookbackDays: lookback, Capital: capital})

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(snap, "", "  ")
	} else {
		out, err = json.Marshal(snap)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// runSymbols prints the universe one symbol per line
func runSymbols(configPath string) error {
	initializeQuiet()

	_, asm, err := buildAssembler(context.Background(), configPath)
	if err != nil {
		return err
	}

	for _, meta := range asm.Symbols() {
		fmt.Printf("%-8s %-32s %s\n", meta.Symbol, meta.Name, meta.Sector)
	}
	return nil
}
