// Package main is the entry point for the mechtool CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mechtool",
	Short: "Mech construction rules engine",
	Long:  `mechtool loads the equipment catalog and resolves, validates and derives stats for mech configurations.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("data", "data", "equipment catalog directory")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	viper.SetEnvPrefix("mechtool")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
}

// newLogger builds the process logger from viper-bound settings.
func newLogger() (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
	})
}

// loadCatalog builds and loads the catalog from the configured data dir.
func loadCatalog(cmd *cobra.Command, log *zap.Logger) (*catalog.Catalog, error) {
	cat := catalog.New(log)
	if _, err := cat.EnsureLoaded(cmd.Context(), viper.GetString("data")); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}
