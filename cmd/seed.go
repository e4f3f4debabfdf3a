package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/pipeline-cli/internal/ingest"
	"github.com/sells-group/pipeline-cli/internal/model"
)

var seedPath string

// seedFile is the YAML layout for bootstrapping a deployment: the
// internal team whose networks get harvested plus the initial target
// list.
type seedFile struct {
	TeamMembers []struct {
		Name        string `yaml:"name"`
		Role        string `yaml:"role"`
		LinkedInURL string `yaml:"linkedin_url"`
	} `yaml:"team_members"`
	Companies []ingest.CompanyRow `yaml:"companies"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load team members and target companies from a YAML seed file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(seedPath)
		if err != nil {
			return eris.Wrap(err, "seed: read file")
		}

		var seed seedFile
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return eris.Wrap(err, "seed: parse yaml")
		}

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, tm := range seed.TeamMembers {
			m := &model.TeamMember{
				Name:        tm.Name,
				Role:        tm.Role,
				LinkedInURL: tm.LinkedInURL,
				Active:      true,
			}
			if err := s.CreateTeamMember(ctx, m); err != nil {
				return eris.Wrapf(err, "seed: create team member %s", tm.Name)
			}
			zap.L().Info("team member created", zap.String("id", m.ID), zap.String("name", m.Name))
		}

		summary, err := ingest.New(s).ImportCompanies(ctx, seed.Companies)
		if err != nil {
			return eris.Wrap(err, "seed: import companies")
		}

		zap.L().Info("seed complete",
			zap.Int("team_members", len(seed.TeamMembers)),
			zap.Int("companies_created", summary.Created),
			zap.Int("companies_updated", summary.Updated),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedPath, "file", "seed.yaml", "path to YAML seed file")
	rootCmd.AddCommand(seedCmd)
}
