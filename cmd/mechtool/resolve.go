package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/resolver"
)

var resolveConfigPath string

var resolveCmd = &cobra.Command{
	Use:   "resolve [id ...]",
	Short: "Resolve equipment IDs against the catalog",
	Long: `Resolve one or more equipment IDs, names or legacy concatenated IDs to
canonical catalog entries. With --config, resolves every equipment
reference in a configuration file instead.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveConfigPath, "config", "", "configuration file to resolve")
}

func runResolve(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(cmd, log)
	if err != nil {
		return err
	}
	res := resolver.New(cat)

	if resolveConfigPath != "" {
		cfg, err := loadConfiguration(resolveConfigPath)
		if err != nil {
			return err
		}
		for i, r := range res.ResolveAll(cfg) {
			printResult(cmd, cfg.Equipment[i].Ref, r)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("nothing to resolve: pass IDs or --config")
	}
	for _, id := range args {
		printResult(cmd, id, res.Resolve(id, nil))
	}
	return nil
}

func printResult(cmd *cobra.Command, input string, r resolver.Result) {
	if r.Found {
		cmd.Printf("%-40s -> %s (%s)\n", input, r.CanonicalID, r.Equipment.Name)
		return
	}
	cmd.Printf("%-40s -> not found", input)
	if len(r.AlternateIDs) > 0 {
		cmd.Printf("; did you mean: %s", strings.Join(r.AlternateIDs, ", "))
	}
	cmd.Println()
}
