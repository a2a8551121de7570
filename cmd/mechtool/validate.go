package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/resolver"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config.json>",
	Short: "Validate a mech configuration against construction rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(cmd, log)
	if err != nil {
		return err
	}

	cfg, err := loadConfiguration(args[0])
	if err != nil {
		return err
	}

	resolved := resolver.Items(resolver.New(cat).ResolveAll(cfg))
	result := validate.Validate(cfg, resolved)

	for _, f := range result.Errors {
		printFinding(cmd, f)
	}
	for _, f := range result.Warnings {
		printFinding(cmd, f)
	}
	for _, f := range result.Info {
		printFinding(cmd, f)
	}

	if !result.IsValid() {
		return fmt.Errorf("%s: %d error(s)", cfg.Name, len(result.Errors))
	}
	cmd.Printf("%s: valid\n", cfg.Name)
	return nil
}

func printFinding(cmd *cobra.Command, f validate.Finding) {
	if f.Location != "" {
		cmd.Printf("%-7s %-22s [%s] %s\n", f.Severity, f.Code, f.Location, f.Message)
		return
	}
	cmd.Printf("%-7s %-22s %s\n", f.Severity, f.Code, f.Message)
}
