package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/RuneStatus_Go/internal/baseline"
	"github.com/osse101/RuneStatus_Go/internal/domain"
)

func combatCmd() *cobra.Command {
	levels := map[string]*int{}
	cmd := &cobra.Command{
		Use:   "combat",
		Short: "Compute a combat level from skill levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changes := make([]domain.StatChange, 0, len(levels))
			for skill, level := range levels {
				if *level < 1 || *level > 99 {
					return fmt.Errorf("%s level must be between 1 and 99, got %d", skill, *level)
				}
				changes = append(changes, domain.StatChange{Skill: skill, Level: *level, BoostedLevel: *level})
			}
			fmt.Fprintln(cmd.OutOrStdout(), baseline.CombatLevel(changes))
			return nil
		},
	}

	flags := []struct {
		name  string
		skill string
		def   int
	}{
		{"attack", domain.SkillAttack, 1},
		{"strength", domain.SkillStrength, 1},
		{"defence", domain.SkillDefence, 1},
		{"hitpoints", domain.SkillHitpoints, baseline.MinHitpointsLevel},
		{"prayer", domain.SkillPrayer, 1},
		{"ranged", domain.SkillRanged, 1},
		{"magic", domain.SkillMagic, 1},
	}
	for _, f := range flags {
		levels[f.skill] = cmd.Flags().Int(f.name, f.def, f.name+" level")
	}
	return cmd
}
