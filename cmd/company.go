package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/model"
	"github.com/sells-group/pipeline-cli/internal/tracker"
)

var (
	signalCompanyID string
	signalType      string
	signalSummary   string
	signalSource    string
	signalRelevance int
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage pipeline companies",
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		companies, err := s.ListCompanies(cmd.Context())
		if err != nil {
			return err
		}

		for _, c := range companies {
			fmt.Printf("%s  %-32s %-12s %s\n", c.ID, c.Name, c.Status, c.ICPSegment)
		}
		return nil
	},
}

var companyStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Update a company's pipeline status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.UpdateCompanyStatus(cmd.Context(), args[0], model.CompanyStatus(args[1])); err != nil {
			return err
		}

		zap.L().Info("company status updated",
			zap.String("id", args[0]), zap.String("status", args[1]))
		return nil
	},
}

var companySignalCmd = &cobra.Command{
	Use:   "signal",
	Short: "Record a signal against a company",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		sig := &model.Signal{
			CompanyID:      signalCompanyID,
			Type:           signalType,
			Text:           signalSummary,
			SourceURL:      signalSource,
			RelevanceScore: signalRelevance,
		}
		if err := tracker.New(s).AddSignal(cmd.Context(), sig); err != nil {
			return err
		}

		zap.L().Info("signal recorded", zap.String("id", sig.ID), zap.String("company", sig.CompanyID))
		return nil
	},
}

func init() {
	companySignalCmd.Flags().StringVar(&signalCompanyID, "company", "", "company ID")
	companySignalCmd.Flags().StringVar(&signalType, "type", "news", "signal type (hiring, funding, news, product)")
	companySignalCmd.Flags().StringVar(&signalSummary, "summary", "", "signal summary")
	companySignalCmd.Flags().StringVar(&signalSource, "source", "", "source URL")
	companySignalCmd.Flags().IntVar(&signalRelevance, "relevance", 50, "relevance score 0-100")
	_ = companySignalCmd.MarkFlagRequired("company")

	companyCmd.AddCommand(companyListCmd, companyStatusCmd, companySignalCmd)
	rootCmd.AddCommand(companyCmd)
}
