package ingest

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/company"
	"github.com/sells-group/pipeline-cli/internal/model"
)

// ImportCompanies merges company rows into the store. Uniqueness is
// normalized-name equality: a row whose normalized name matches an
// existing company updates that company's non-empty fields instead of
// inserting a duplicate. Rows without a name are skipped and counted.
func (ing *Ingestor) ImportCompanies(ctx context.Context, rows []CompanyRow) (*CompanySummary, error) {
	existing, err := ing.store.ListCompanies(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: list companies")
	}
	dir := company.BuildDirectory(existing)

	summary := &CompanySummary{}
	for _, row := range rows {
		if row.Name == "" {
			summary.Skipped++
			zap.L().Warn("company import: row missing name, skipped")
			continue
		}

		if match := dir.Lookup(row.Name); match != nil {
			applyCompanyRow(match, row)
			if err := ing.store.UpdateCompany(ctx, match); err != nil {
				return summary, eris.Wrapf(err, "ingest: update company %s", match.ID)
			}
			summary.Updated++
			continue
		}

		c := &model.Company{
			Name:         row.Name,
			Domain:       row.Domain,
			ICPSegment:   row.ICPSegment,
			PriorityTier: row.PriorityTier,
			SignalTier:   row.SignalTier,
			FitNote:      row.FitNote,
			Notes:        row.Notes,
		}
		if err := ing.store.CreateCompany(ctx, c); err != nil {
			return summary, eris.Wrapf(err, "ingest: create company %s", row.Name)
		}
		summary.Created++

		// Rebuild so later rows in this batch dedupe against it.
		existing = append(existing, *c)
		dir = company.BuildDirectory(existing)
	}

	zap.L().Info("company import complete",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

// applyCompanyRow overwrites a company's fields with the row's non-empty
// values. The stored name is kept: normalized equality already matched,
// and the stored spelling is the human-readable identity.
func applyCompanyRow(c *model.Company, row CompanyRow) {
	if row.Domain != "" {
		c.Domain = row.Domain
	}
	if row.ICPSegment != "" {
		c.ICPSegment = row.ICPSegment
	}
	if row.PriorityTier != "" {
		c.PriorityTier = row.PriorityTier
	}
	if row.SignalTier != "" {
		c.SignalTier = row.SignalTier
	}
	if row.FitNote != "" {
		c.FitNote = row.FitNote
	}
	if row.Notes != "" {
		c.Notes = row.Notes
	}
}

// ParseCompanyRows converts raw header/rows data into company rows.
func ParseCompanyRows(header []string, rows [][]string) []CompanyRow {
	idx := columnIndex(header)
	out := make([]CompanyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, CompanyRow{
			Name:         field(row, idx, "name", "company", "company name"),
			Domain:       field(row, idx, "domain", "website"),
			ICPSegment:   field(row, idx, "icp_segment", "icp segment", "segment"),
			PriorityTier: field(row, idx, "priority_tier", "priority tier", "priority"),
			SignalTier:   field(row, idx, "signal_tier", "signal tier"),
			FitNote:      field(row, idx, "fit_note", "fit note", "fit"),
			Notes:        field(row, idx, "notes"),
		})
	}
	return out
}
