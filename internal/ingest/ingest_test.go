package ingest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/model"
	"github.com/sells-group/pipeline-cli/internal/store"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func newTestIngestor(t *testing.T) (*Ingestor, store.Store) {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { s.Close() })
	return New(s), s
}

func TestImportCompanies(t *testing.T) {
	ctx := context.Background()
	ing, s := newTestIngestor(t)

	summary, err := ing.ImportCompanies(ctx, []CompanyRow{
		{Name: "Acme Inc.", Domain: "acme.com"},
		{Name: "Globex", ICPSegment: "enterprise"},
		{Name: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 1, summary.Skipped)

	companies, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}

func TestImportCompanies_NormalizedDedup(t *testing.T) {
	ctx := context.Background()
	ing, s := newTestIngestor(t)

	_, err := ing.ImportCompanies(ctx, []CompanyRow{{Name: "Acme Inc.", Domain: "acme.com"}})
	require.NoError(t, err)

	// Suffix and case variants update the existing record. The stored
	// spelling wins; only non-empty row fields overwrite.
	summary, err := ing.ImportCompanies(ctx, []CompanyRow{{Name: "ACME LLC", Notes: "from second import"}})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 1, summary.Updated)

	companies, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme Inc.", companies[0].Name)
	assert.Equal(t, "acme.com", companies[0].Domain)
	assert.Equal(t, "from second import", companies[0].Notes)
}

func TestImportCompanies_IntraBatchDedup(t *testing.T) {
	ctx := context.Background()
	ing, s := newTestIngestor(t)

	summary, err := ing.ImportCompanies(ctx, []CompanyRow{
		{Name: "Acme Inc."},
		{Name: "acme"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Updated)

	companies, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestIngestContacts(t *testing.T) {
	ctx := context.Background()
	ing, s := newTestIngestor(t)

	summary, err := ing.IngestContacts(ctx, []ContactRow{
		{
			Name:        "Jane",
			Title:       "VP of Product",
			CompanyName: "Acme Inc.",
			Company:     CompanyRow{Domain: "acme.com"},
		},
		{Name: "No Company"},
		{Title: "CTO", CompanyName: "Ghost Corp"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CompaniesCreated)
	assert.Equal(t, 1, summary.ContactsCreated)
	assert.Equal(t, 2, summary.Skipped)

	comp, err := s.GetCompanyByName(ctx, "Acme Inc.")
	require.NoError(t, err)
	require.NotNil(t, comp)
	assert.Equal(t, "acme.com", comp.Domain)

	contacts, err := s.ListContactsByCompany(ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "VP", contacts[0].JobLevel)
	assert.Equal(t, "Product", contacts[0].JobFunction)
	assert.Equal(t, "Decision Maker", contacts[0].RoleType)
	assert.Equal(t, 92, contacts[0].PersonaScore)
}

func TestIngestContacts_ExactNameMatchOnly(t *testing.T) {
	ctx := context.Background()
	ing, s := newTestIngestor(t)

	_, err := ing.ImportCompanies(ctx, []CompanyRow{{Name: "Acme Inc."}})
	require.NoError(t, err)

	// Contact import matches by exact stored name, not normalized name, so
	// "Acme" creates a second company rather than reusing "Acme Inc.".
	summary, err := ing.IngestContacts(ctx, []ContactRow{
		{Name: "Jane", Title: "CTO", CompanyName: "Acme"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CompaniesCreated)

	companies, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}

func TestImportConnections(t *testing.T) {
	ctx := context.Background()
	ing, s := newTestIngestor(t)

	member := &model.TeamMember{Name: "Alice", Active: true}
	require.NoError(t, s.CreateTeamMember(ctx, member))
	_, err := ing.ImportCompanies(ctx, []CompanyRow{{Name: "Acme Inc."}})
	require.NoError(t, err)

	summary, err := ing.ImportConnections(ctx, member.ID, []ConnectionRow{
		{Name: "Bob", Company: "Acme LLC", ProfileURL: "https://linkedin.com/in/bob"},
		{Name: "Dana", Title: "CTO at Initech", ProfileURL: "https://linkedin.com/in/dana"},
		{Name: "No URL"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 1, summary.Matched)
	assert.Equal(t, 1, summary.Skipped)

	// Re-importing the same export updates in place.
	summary, err = ing.ImportConnections(ctx, member.ID, []ConnectionRow{
		{Name: "Bob", Company: "Acme LLC", ProfileURL: "https://linkedin.com/in/bob"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 1, summary.Updated)
}

func TestImportConnections_MissingTeamMember(t *testing.T) {
	ing, _ := newTestIngestor(t)

	_, err := ing.ImportConnections(context.Background(), "nope", []ConnectionRow{
		{Name: "Bob", ProfileURL: "https://linkedin.com/in/bob"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing reference")
}

func TestParseCompanyRows(t *testing.T) {
	header := []string{"Company Name", "Website", "Segment", "Notes"}
	rows := [][]string{
		{"Acme Inc.", "acme.com", "mid-market", "warm"},
		{"Globex", "", "enterprise", ""},
	}

	parsed := ParseCompanyRows(header, rows)
	require.Len(t, parsed, 2)
	assert.Equal(t, "Acme Inc.", parsed[0].Name)
	assert.Equal(t, "acme.com", parsed[0].Domain)
	assert.Equal(t, "mid-market", parsed[0].ICPSegment)
	assert.Equal(t, "warm", parsed[0].Notes)
	assert.Empty(t, parsed[1].Domain)
}

func TestParseContactRows(t *testing.T) {
	header := []string{"Full Name", "Job Title", "Company", "Email"}
	rows := [][]string{{"Jane Doe", "VP of Product", "Acme", "jane@acme.com"}}

	parsed := ParseContactRows(header, rows)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Jane Doe", parsed[0].Name)
	assert.Equal(t, "VP of Product", parsed[0].Title)
	assert.Equal(t, "Acme", parsed[0].CompanyName)
	assert.Equal(t, "jane@acme.com", parsed[0].Email)
}

func TestParseConnectionRows(t *testing.T) {
	// LinkedIn export headers split the name.
	header := []string{"First Name", "Last Name", "URL", "Company", "Position"}
	rows := [][]string{
		{"Bob", "Smith", "https://linkedin.com/in/bob", "Acme", "CTO"},
		{"Dana", "", "https://linkedin.com/in/dana", "", "Engineer at Initech"},
	}

	parsed := ParseConnectionRows(header, rows)
	require.Len(t, parsed, 2)
	assert.Equal(t, "Bob Smith", parsed[0].Name)
	assert.Equal(t, "https://linkedin.com/in/bob", parsed[0].ProfileURL)
	assert.Equal(t, "Acme", parsed[0].Company)
	assert.Equal(t, "CTO", parsed[0].Title)
	assert.Equal(t, "Dana", parsed[1].Name)
	assert.Equal(t, "Engineer at Initech", parsed[1].Title)
}

func TestParseConnectionRows_ShortRow(t *testing.T) {
	header := []string{"Name", "URL", "Company"}
	rows := [][]string{{"Bob"}}

	parsed := ParseConnectionRows(header, rows)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Bob", parsed[0].Name)
	assert.Empty(t, parsed[0].ProfileURL)
}
