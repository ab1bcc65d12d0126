package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tobilastik/iphone-stopwatch-clone/app"
	"github.com/tobilastik/iphone-stopwatch-clone/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		debug   bool
	)
	rootCmd := &cobra.Command{
		Use:   "stopwatch",
		Short: "A stopwatch with lap times",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("error loading config %s: %w", cfgPath, err)
			}
			if debug {
				cfg.Debug = true
			}
			verr := cfg.Validate()

			// Set up logger
			logger := NewLogger(cfg.Level())
			if verr != nil {
				logger.Warn("config adjusted", "path", cfgPath, "error", verr)
			}

			application := app.NewApp(cfg.Title, cfg.Width, cfg.Height, cfg, logger)
			application.Start()
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "path to the JSON config file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging and runtime stats")

	initCmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(cfgPath); err == nil {
				return fmt.Errorf("config %s already exists", cfgPath)
			}
			if err := config.DefaultConfig().Save(cfgPath); err != nil {
				return fmt.Errorf("error writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgPath)
			return nil
		},
	}
	rootCmd.AddCommand(initCmd)
	return rootCmd
}
