package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/model"
)

var (
	teamName     string
	teamRole     string
	teamLinkedIn string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage team members",
}

var teamAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a team member",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		m := &model.TeamMember{
			Name:        teamName,
			Role:        teamRole,
			LinkedInURL: teamLinkedIn,
			Active:      true,
		}
		if err := s.CreateTeamMember(cmd.Context(), m); err != nil {
			return err
		}

		zap.L().Info("team member created", zap.String("id", m.ID), zap.String("name", m.Name))
		return nil
	},
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team members",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		members, err := s.ListTeamMembers(cmd.Context())
		if err != nil {
			return err
		}

		for _, m := range members {
			status := "active"
			if !m.Active {
				status = "inactive"
			}
			fmt.Printf("%s  %-24s %-20s %s  connections=%d icp=%d\n",
				m.ID, m.Name, m.Role, status, m.ConnectionCount, m.ICPConnectionCount)
		}
		return nil
	},
}

var teamDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a team member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.SetTeamMemberActive(cmd.Context(), args[0], false); err != nil {
			return err
		}

		zap.L().Info("team member deactivated", zap.String("id", args[0]))
		return nil
	},
}

func init() {
	teamAddCmd.Flags().StringVar(&teamName, "name", "", "member name")
	teamAddCmd.Flags().StringVar(&teamRole, "role", "", "member role")
	teamAddCmd.Flags().StringVar(&teamLinkedIn, "linkedin", "", "LinkedIn profile URL")
	_ = teamAddCmd.MarkFlagRequired("name")

	teamCmd.AddCommand(teamAddCmd, teamListCmd, teamDeactivateCmd)
	rootCmd.AddCommand(teamCmd)
}
