package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skilltrail/internal/skillgraph"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill graph",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by track or level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		track, _ := cmd.Flags().GetString("track")
		level, _ := cmd.Flags().GetInt("level")

		var skills []skillgraph.Skill

		switch {
		case track != "" && level != 0:
			return fmt.Errorf("use --track or --level, not both")
		case track != "":
			skills = skillgraph.ByTrack(skillgraph.Track(track))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for track %q", track)
			}
		case level != 0:
			skills = skillgraph.ByLevel(level)
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for level %d", level)
			}
		default:
			skills = skillgraph.TopologicalOrder()
		}

		// Header.
		fmt.Printf("%-20s  %-32s  %5s  %-26s  %4s  %s\n",
			"ID", "Name", "Level", "Track", "Core", "Prerequisites")
		fmt.Println(strings.Repeat("─", 110))

		for _, s := range skills {
			name := s.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			core := ""
			if s.Core {
				core = "yes"
			}
			fmt.Printf("%-20s  %-32s  %5d  %-26s  %4s  %s\n",
				s.ID, name, int(s.Level), string(s.Track), core,
				strings.Join(s.Prerequisites, ", "))
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show one skill with its prerequisites and dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := skillgraph.GetSkill(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", s.Name, s.ID)
		if s.Description != "" {
			fmt.Println(s.Description)
		}
		fmt.Printf("Track: %s   Level: %d   Core: %v   Expected hours: %.1f\n",
			string(s.Track), int(s.Level), s.Core, s.ExpectedHours())

		if prereqs := skillgraph.Prerequisites(s.ID); len(prereqs) > 0 {
			fmt.Println("\nPrerequisites:")
			for _, p := range prereqs {
				fmt.Printf("  %-20s  %s\n", p.ID, p.Name)
			}
		}
		if deps := skillgraph.Dependents(s.ID); len(deps) > 0 {
			fmt.Println("\nUnlocks:")
			for _, d := range deps {
				fmt.Printf("  %-20s  %s\n", d.ID, d.Name)
			}
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("track", "", "Filter by track (e.g. backend-development)")
	skillListCmd.Flags().Int("level", 0, "Filter by level (1, 2, or 3)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
