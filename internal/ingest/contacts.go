package ingest

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/model"
	"github.com/sells-group/pipeline-cli/internal/persona"
)

// IngestContacts imports contact rows. Each row's title is classified and
// scored, and the contact is bound to a company found by exact stored-name
// lookup, deliberately stricter than the normalized matching used for
// connection resolution, because bulk contact imports carry authoritative
// company names while harvested connections carry messy free text. When
// no exact-name company exists, one is created from the row's company
// metadata. Rows missing a name or company name are skipped and counted.
func (ing *Ingestor) IngestContacts(ctx context.Context, rows []ContactRow) (*ContactSummary, error) {
	summary := &ContactSummary{}

	for _, row := range rows {
		if row.Name == "" || row.CompanyName == "" {
			summary.Skipped++
			zap.L().Warn("contact import: row missing name or company, skipped",
				zap.String("name", row.Name),
			)
			continue
		}

		comp, err := ing.store.GetCompanyByName(ctx, row.CompanyName)
		if err != nil {
			return summary, eris.Wrap(err, "ingest: lookup company")
		}
		if comp == nil {
			comp = &model.Company{
				Name:         row.CompanyName,
				Domain:       row.Company.Domain,
				ICPSegment:   row.Company.ICPSegment,
				PriorityTier: row.Company.PriorityTier,
				SignalTier:   row.Company.SignalTier,
				FitNote:      row.Company.FitNote,
				Notes:        row.Company.Notes,
			}
			if err := ing.store.CreateCompany(ctx, comp); err != nil {
				return summary, eris.Wrapf(err, "ingest: create company %s", row.CompanyName)
			}
			summary.CompaniesCreated++
		}

		p := persona.Classify(row.Title)
		contact := &model.Contact{
			CompanyID:    comp.ID,
			Name:         row.Name,
			Title:        row.Title,
			JobLevel:     p.Level,
			JobFunction:  p.Function,
			RoleType:     p.RoleType,
			PersonaScore: persona.Score(p),
			LinkedInURL:  row.LinkedInURL,
			Email:        row.Email,
			Source:       row.Source,
		}
		if err := ing.store.CreateContact(ctx, contact); err != nil {
			return summary, eris.Wrapf(err, "ingest: create contact %s", row.Name)
		}
		summary.ContactsCreated++
	}

	zap.L().Info("contact import complete",
		zap.Int("contacts_created", summary.ContactsCreated),
		zap.Int("companies_created", summary.CompaniesCreated),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

// ParseContactRows converts raw header/rows data into contact rows.
func ParseContactRows(header []string, rows [][]string) []ContactRow {
	idx := columnIndex(header)
	out := make([]ContactRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ContactRow{
			Name:        field(row, idx, "name", "full name", "contact"),
			Title:       field(row, idx, "title", "position", "job title"),
			CompanyName: field(row, idx, "company", "company name"),
			LinkedInURL: field(row, idx, "linkedin_url", "linkedin", "url"),
			Email:       field(row, idx, "email", "email address"),
			Source:      field(row, idx, "source"),
			Company: CompanyRow{
				Domain:       field(row, idx, "domain", "website"),
				ICPSegment:   field(row, idx, "icp_segment", "segment"),
				PriorityTier: field(row, idx, "priority_tier", "priority"),
			},
		})
	}
	return out
}
