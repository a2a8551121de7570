package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/derive"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/resolver"
)

var statsCmd = &cobra.Command{
	Use:   "stats <config.json>",
	Short: "Print derived stats for a mech configuration",
	Long:  `Compute weights, movement, heat balance, cost and battle value for a configuration and print them as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

// statsReport is the JSON document printed by the stats command.
type statsReport struct {
	Name        string               `json:"name"`
	Tonnage     int                  `json:"tonnage"`
	Totals      derive.Totals        `json:"totals"`
	Movement    derive.Movement      `json:"movement"`
	Heat        derive.HeatProfile   `json:"heat"`
	Cost        derive.CostBreakdown `json:"cost"`
	BattleValue bvcalc.Result        `json:"battle_value"`
}

func runStats(cmd *cobra.Command, args []string) error {
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

	report := statsReport{
		Name:        cfg.Name,
		Tonnage:     cfg.Tonnage,
		Totals:      derive.CalculateTotals(cfg, resolved),
		Movement:    derive.CalculateMovement(cfg, resolved),
		Heat:        derive.CalculateHeatProfile(cfg, resolved),
		Cost:        derive.CalculateCost(cfg, resolved),
		BattleValue: derive.CalculateBattleValue(cfg, resolved),
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
