package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/oracle/internal/config"
	"github.com/abhisek/oracle/internal/logging"
	"github.com/abhisek/oracle/internal/oracle"
)

var rootCmd = &cobra.Command{
	Use:   "oracle",
	Short: "Draw oracle cards in the terminal",
	Long:  "Oracle picks a deck and a category, then draws a message from the oracle dataset.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path or URL of the SQLite dataset (overrides ORACLE_DB env var)")
	rootCmd.PersistentFlags().String("sha256", "", "Expected SHA-256 of the dataset (overrides ORACLE_DB_SHA256 env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides ORACLE_LOG_LEVEL env var)")

	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig reads ORACLE_* variables and applies flag overrides. Flags
// take priority over the environment, which takes priority over defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return cfg, err
	}
	if s, _ := cmd.Flags().GetString("db"); s != "" {
		cfg.Source = s
	}
	if s, _ := cmd.Flags().GetString("sha256"); s != "" {
		cfg.Checksum = s
	}
	if s, _ := cmd.Flags().GetString("log-level"); s != "" {
		cfg.LogLevel = s
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// initLogging starts file logging. Failures are reported but not fatal.
func initLogging(cmd *cobra.Command) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Logging disabled:", err)
		return
	}
	if err := logging.Init(cfg.LogDir, cfg.LogLevel); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Logging disabled:", err)
	}
}

// loadSession resolves the dataset source and loads it into a new session.
func loadSession(cmd *cobra.Command) (*oracle.Session, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	sess := oracle.New()
	if err := sess.Load(cmd.Context(), cfg.Source, cfg.FetchOptions()); err != nil {
		return nil, err
	}
	return sess, nil
}
