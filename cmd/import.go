package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/ingest"
)

var (
	importPath   string
	importMember string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import companies, contacts, or connections from CSV/XLSX",
}

var importCompaniesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Import target companies",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		header, rows, err := ingest.ReadRows(importPath)
		if err != nil {
			return err
		}

		summary, err := ingest.New(s).ImportCompanies(ctx, ingest.ParseCompanyRows(header, rows))
		if err != nil {
			return eris.Wrap(err, "import companies")
		}

		zap.L().Info("import complete",
			zap.Int("created", summary.Created),
			zap.Int("updated", summary.Updated),
			zap.Int("skipped", summary.Skipped),
			zap.String("file", importPath),
		)
		return nil
	},
}

var importContactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Import contacts with persona classification",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		header, rows, err := ingest.ReadRows(importPath)
		if err != nil {
			return err
		}

		summary, err := ingest.New(s).IngestContacts(ctx, ingest.ParseContactRows(header, rows))
		if err != nil {
			return eris.Wrap(err, "import contacts")
		}

		zap.L().Info("import complete",
			zap.Int("contacts_created", summary.ContactsCreated),
			zap.Int("companies_created", summary.CompaniesCreated),
			zap.Int("skipped", summary.Skipped),
			zap.String("file", importPath),
		)
		return nil
	},
}

var importConnectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "Import one team member's connection export",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if importMember == "" {
			return eris.New("--member is required for connection imports")
		}

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		header, rows, err := ingest.ReadRows(importPath)
		if err != nil {
			return err
		}

		summary, err := ingest.New(s).ImportConnections(ctx, importMember, ingest.ParseConnectionRows(header, rows))
		if err != nil {
			return eris.Wrap(err, "import connections")
		}

		zap.L().Info("import complete",
			zap.Int("created", summary.Created),
			zap.Int("updated", summary.Updated),
			zap.Int("matched", summary.Matched),
			zap.Int("skipped", summary.Skipped),
			zap.String("file", importPath),
		)
		return nil
	},
}

func init() {
	importCmd.PersistentFlags().StringVar(&importPath, "file", "", "path to CSV or XLSX file (required)")
	importConnectionsCmd.Flags().StringVar(&importMember, "member", "", "team member ID owning the export")
	_ = importCmd.MarkPersistentFlagRequired("file")

	importCmd.AddCommand(importCompaniesCmd, importContactsCmd, importConnectionsCmd)
	rootCmd.AddCommand(importCmd)
}
