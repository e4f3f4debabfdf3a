package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/model"
	"github.com/sells-group/pipeline-cli/internal/tracker"
)

var (
	contactName     string
	contactTitle    string
	contactEmail    string
	contactLinkedIn string
	contactCompany  string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a contact to a company",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		c := &model.Contact{
			CompanyID:   contactCompany,
			Name:        contactName,
			Title:       contactTitle,
			Email:       contactEmail,
			LinkedInURL: contactLinkedIn,
		}
		if err := tracker.New(s).AddContact(cmd.Context(), c); err != nil {
			return err
		}

		zap.L().Info("contact created",
			zap.String("id", c.ID),
			zap.String("name", c.Name),
			zap.String("role_type", c.RoleType),
			zap.Int("persona_score", c.PersonaScore))
		return nil
	},
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts for a company",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		contacts, err := s.ListContactsByCompany(cmd.Context(), contactCompany)
		if err != nil {
			return err
		}

		for _, c := range contacts {
			fmt.Printf("%s  %-24s %-32s %-16s score=%d  %s\n",
				c.ID, c.Name, c.Title, c.RoleType, c.PersonaScore, c.Status)
		}
		return nil
	},
}

func init() {
	contactAddCmd.Flags().StringVar(&contactCompany, "company", "", "company ID")
	contactAddCmd.Flags().StringVar(&contactName, "name", "", "contact name")
	contactAddCmd.Flags().StringVar(&contactTitle, "title", "", "job title")
	contactAddCmd.Flags().StringVar(&contactEmail, "email", "", "email address")
	contactAddCmd.Flags().StringVar(&contactLinkedIn, "linkedin", "", "LinkedIn profile URL")
	_ = contactAddCmd.MarkFlagRequired("company")
	_ = contactAddCmd.MarkFlagRequired("name")

	contactListCmd.Flags().StringVar(&contactCompany, "company", "", "company ID")
	_ = contactListCmd.MarkFlagRequired("company")

	contactCmd.AddCommand(contactAddCmd, contactListCmd)
	rootCmd.AddCommand(contactCmd)
}
