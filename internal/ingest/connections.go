package ingest

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/company"
	"github.com/sells-group/pipeline-cli/internal/model"
)

// ImportConnections ingests one team member's harvested network export.
// The company directory is built once from the current company set and
// every row is resolved against that snapshot. Rows without a profile URL
// are skipped and counted; a missing team member fails the whole batch
// because every row shares the reference.
func (ing *Ingestor) ImportConnections(ctx context.Context, teamMemberID string, rows []ConnectionRow) (*ConnectionSummary, error) {
	member, err := ing.store.GetTeamMember(ctx, teamMemberID)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: lookup team member")
	}
	if member == nil {
		return nil, eris.Errorf("ingest: missing reference: team member %s", teamMemberID)
	}

	companies, err := ing.store.ListCompanies(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: list companies")
	}
	dir := company.BuildDirectory(companies)

	summary := &ConnectionSummary{}
	for _, row := range rows {
		if row.ProfileURL == "" {
			summary.Skipped++
			zap.L().Warn("connection import: row missing profile URL, skipped",
				zap.String("name", row.Name),
			)
			continue
		}

		conn := &model.Connection{
			TeamMemberID: teamMemberID,
			Name:         row.Name,
			Title:        row.Title,
			Company:      row.Company,
			Location:     row.Location,
			ProfileURL:   row.ProfileURL,
		}
		created, err := ing.resolver.IngestConnection(ctx, conn, dir)
		if err != nil {
			return summary, eris.Wrapf(err, "ingest: upsert connection %s", row.ProfileURL)
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
		if conn.IsICPMatch {
			summary.Matched++
		}
	}

	zap.L().Info("connection import complete",
		zap.String("team_member", member.Name),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("matched", summary.Matched),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

// ParseConnectionRows converts raw header/rows data into connection rows.
// Header names follow the LinkedIn connections export plus common
// variants.
func ParseConnectionRows(header []string, rows [][]string) []ConnectionRow {
	idx := columnIndex(header)
	out := make([]ConnectionRow, 0, len(rows))
	for _, row := range rows {
		name := field(row, idx, "name", "full name")
		if name == "" {
			first := field(row, idx, "first name")
			last := field(row, idx, "last name")
			switch {
			case first != "" && last != "":
				name = first + " " + last
			case first != "":
				name = first
			default:
				name = last
			}
		}
		out = append(out, ConnectionRow{
			Name:       name,
			Title:      field(row, idx, "title", "position", "headline"),
			Company:    field(row, idx, "company"),
			Location:   field(row, idx, "location"),
			ProfileURL: field(row, idx, "profile_url", "url", "profile url", "linkedin url"),
		})
	}
	return out
}
