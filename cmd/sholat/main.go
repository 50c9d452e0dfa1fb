// Package main provides the CLI entrypoint for sholat.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/sholat/internal/aladhan"
	"github.com/verte-zerg/sholat/internal/clock"
	"github.com/verte-zerg/sholat/internal/config"
	"github.com/verte-zerg/sholat/internal/logging"
	"github.com/verte-zerg/sholat/internal/model"
	"github.com/verte-zerg/sholat/internal/store"
	"github.com/verte-zerg/sholat/internal/tui"
)

const (
	defaultCity      = "Semarang"
	defaultCountry   = "Indonesia"
	defaultTimezone  = "Asia/Jakarta"
	defaultZoneLabel = "WIB"
	defaultMethod    = 20
	defaultTimeout   = 15
	defaultHistory   = 30
)

var (
	boardCity      string
	boardCountry   string
	boardTimezone  string
	boardZoneLabel string
	boardMethod    int
	boardBaseURL   string
	boardTimeout   int
	boardNoArchive bool
	debugLog       bool

	historyLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sholat",
		Short:         "Prayer time board for the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runBoardCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&boardCity, "city", defaultCity, "city to query")
	flags.StringVar(&boardCountry, "country", defaultCountry, "country of the city")
	flags.StringVar(&boardTimezone, "timezone", defaultTimezone, "IANA timezone used for the clock and next prayer")
	flags.StringVar(&boardZoneLabel, "zone-label", defaultZoneLabel, "label printed after the clock")
	flags.IntVar(&boardMethod, "method", defaultMethod, "Aladhan calculation method id")
	flags.StringVar(&boardBaseURL, "api-url", aladhan.DefaultBaseURL, "Aladhan API base URL")
	flags.IntVar(&boardTimeout, "timeout", defaultTimeout, "request timeout in seconds")
	flags.BoolVar(&debugLog, "debug", false, "write debug entries to the log file")
	rootCmd.Flags().BoolVar(&boardNoArchive, "no-archive", false, "do not record fetched days")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runBoardCmd(cmd *cobra.Command, _ []string) error {
	cfg, loc, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(config.DefaultLogPath(), debugLog)
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		logger = zerolog.Nop()
	} else {
		defer func() {
			_ = closer.Close()
		}()
	}

	var archive tui.Archive
	if !boardNoArchive {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			logger.Warn().Err(err).Msg("archive unavailable")
		} else {
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logger.Warn().Err(cerr).Msg("failed to close archive")
				}
			}()
			archive = st
		}
	}

	board := tui.NewModel(tui.Options{
		Config:   cfg,
		Location: loc,
		Fetcher:  aladhan.NewClient(cfg.BaseURL, cfg.Timeout),
		Archive:  archive,
		Logger:   logger,
	})
	program := tea.NewProgram(board, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's prayer times",
		Args:  cobra.NoArgs,
		RunE:  runTodayCmd,
	}
}

func runTodayCmd(cmd *cobra.Command, _ []string) error {
	cfg, loc, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	client := aladhan.NewClient(cfg.BaseURL, cfg.Timeout)
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()
	now := time.Now()
	day, err := client.Timings(ctx, aladhan.Query{
		City:    cfg.City,
		Country: cfg.Country,
		Method:  cfg.Method,
		Date:    now.In(loc),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch prayer times: %w", err)
	}
	return writeToday(cmd.OutOrStdout(), cfg, loc, day, now)
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived days",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", defaultHistory, "number of most recent days (0 for all)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	_, loc, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	days, err := st.ListDays(cmd.Context(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to list days: %w", err)
	}
	if len(days) == 0 {
		logErrln("No archived days yet. Run sholat to fetch today's times.")
		return nil
	}
	return writeHistory(cmd.OutOrStdout(), days, loc)
}

// resolveConfig merges defaults, the config file, SHOLAT_* variables and
// explicitly set flags, in increasing priority.
func resolveConfig(cmd *cobra.Command) (model.Config, *time.Location, error) {
	if err := config.LoadDotEnv(".env", config.DefaultEnvPath()); err != nil {
		return model.Config{}, nil, err
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.EnvOverrides(os.Getenv)
	if err != nil {
		return model.Config{}, nil, err
	}
	merged := config.Merge(fileCfg, envCfg)

	applyStringConfig(cmd, "city", &boardCity, merged.Location.City)
	applyStringConfig(cmd, "country", &boardCountry, merged.Location.Country)
	applyStringConfig(cmd, "timezone", &boardTimezone, merged.Location.Timezone)
	applyStringConfig(cmd, "zone-label", &boardZoneLabel, merged.Location.ZoneLabel)
	applyIntConfig(cmd, "method", &boardMethod, merged.Location.Method)
	applyStringConfig(cmd, "api-url", &boardBaseURL, merged.API.BaseURL)
	applyIntConfig(cmd, "timeout", &boardTimeout, merged.API.TimeoutSeconds)

	cfg := model.Config{
		City:      strings.TrimSpace(boardCity),
		Country:   strings.TrimSpace(boardCountry),
		Timezone:  strings.TrimSpace(boardTimezone),
		ZoneLabel: boardZoneLabel,
		Method:    boardMethod,
		BaseURL:   boardBaseURL,
		Timeout:   time.Duration(boardTimeout) * time.Second,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, nil, err
	}
	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		return model.Config{}, nil, err
	}
	return cfg, loc, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg model.Config) error {
	if cfg.City == "" {
		return fmt.Errorf("--city must not be empty")
	}
	if cfg.Country == "" {
		return fmt.Errorf("--country must not be empty")
	}
	if cfg.Method < 0 {
		return fmt.Errorf("--method must be >= 0")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("--timeout must be > 0")
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sholat configuration
# Uncomment a value to enable it. SHOLAT_* environment variables override
# these values and CLI flags override both.

[location]
# city = %q
# country = %q
# timezone = %q
# zone-label = %q
# method = %d             # Aladhan calculation method id

[api]
# base-url = %q
# timeout-seconds = %d
`,
		defaultCity,
		defaultCountry,
		defaultTimezone,
		defaultZoneLabel,
		defaultMethod,
		aladhan.DefaultBaseURL,
		defaultTimeout,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
