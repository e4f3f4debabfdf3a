package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/pipeline-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS companies (
	id                    TEXT PRIMARY KEY,
	name                  TEXT NOT NULL,
	domain                TEXT,
	icp_segment           TEXT,
	priority_tier         TEXT,
	signal_tier           TEXT,
	fit_note              TEXT,
	decision_maker_titles TEXT,
	status                TEXT NOT NULL DEFAULT 'research',
	notes                 TEXT,
	created_at            DATETIME NOT NULL,
	updated_at            DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
	id            TEXT PRIMARY KEY,
	company_id    TEXT NOT NULL REFERENCES companies(id),
	name          TEXT NOT NULL,
	title         TEXT,
	job_level     TEXT,
	job_function  TEXT,
	role_type     TEXT,
	persona_score INTEGER NOT NULL DEFAULT 0,
	status        TEXT NOT NULL DEFAULT 'not_contacted',
	linkedin_url  TEXT,
	email         TEXT,
	source        TEXT,
	created_at    DATETIME NOT NULL,
	updated_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS outreach (
	id           TEXT PRIMARY KEY,
	contact_id   TEXT NOT NULL REFERENCES contacts(id),
	company_id   TEXT NOT NULL,
	channel      TEXT NOT NULL,
	message_type TEXT,
	sent_at      DATETIME NOT NULL,
	response     TEXT,
	responded_at DATETIME
);

CREATE TABLE IF NOT EXISTS signals (
	id              TEXT PRIMARY KEY,
	company_id      TEXT NOT NULL REFERENCES companies(id),
	type            TEXT NOT NULL,
	text            TEXT,
	source_url      TEXT,
	relevance_score INTEGER NOT NULL DEFAULT 0,
	discovered_at   DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS team_members (
	id                   TEXT PRIMARY KEY,
	name                 TEXT NOT NULL,
	role                 TEXT,
	linkedin_url         TEXT,
	active               INTEGER NOT NULL DEFAULT 1,
	connection_count     INTEGER NOT NULL DEFAULT 0,
	icp_connection_count INTEGER NOT NULL DEFAULT 0,
	created_at           DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS connections (
	id             TEXT PRIMARY KEY,
	team_member_id TEXT NOT NULL REFERENCES team_members(id),
	name           TEXT,
	title          TEXT,
	company        TEXT,
	location       TEXT,
	profile_url    TEXT NOT NULL,
	is_icp_match   INTEGER NOT NULL DEFAULT 0,
	company_id     TEXT,
	extracted_at   DATETIME NOT NULL,
	UNIQUE(profile_url, team_member_id)
);

CREATE INDEX IF NOT EXISTS idx_companies_name ON companies(name);
CREATE INDEX IF NOT EXISTS idx_contacts_company_id ON contacts(company_id);
CREATE INDEX IF NOT EXISTS idx_outreach_contact_id ON outreach(contact_id);
CREATE INDEX IF NOT EXISTS idx_signals_company_id ON signals(company_id);
CREATE INDEX IF NOT EXISTS idx_connections_team_member_id ON connections(team_member_id);
CREATE INDEX IF NOT EXISTS idx_connections_company_id ON connections(company_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Companies

func (s *SQLiteStore) CreateCompany(ctx context.Context, c *model.Company) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = model.CompanyStatusResearch
	}

	titles, err := marshalTitles(c.DecisionMakerTitles)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO companies (id, name, domain, icp_segment, priority_tier, signal_tier, fit_note, decision_maker_titles, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Domain, c.ICPSegment, c.PriorityTier, c.SignalTier, c.FitNote, titles, string(c.Status), c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	return eris.Wrap(err, "sqlite: insert company")
}

func (s *SQLiteStore) UpdateCompany(ctx context.Context, c *model.Company) error {
	c.UpdatedAt = time.Now().UTC()

	titles, err := marshalTitles(c.DecisionMakerTitles)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE companies SET name = ?, domain = ?, icp_segment = ?, priority_tier = ?, signal_tier = ?, fit_note = ?, decision_maker_titles = ?, status = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		c.Name, c.Domain, c.ICPSegment, c.PriorityTier, c.SignalTier, c.FitNote, titles, string(c.Status), c.Notes, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update company %s", c.ID)
	}
	return checkRowsAffected(res, "company", c.ID)
}

func (s *SQLiteStore) UpdateCompanyStatus(ctx context.Context, id string, status model.CompanyStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE companies SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update company status %s", id)
	}
	return checkRowsAffected(res, "company", id)
}

const companyColumns = `id, name, domain, icp_segment, priority_tier, signal_tier, fit_note, decision_maker_titles, status, notes, created_at, updated_at`

func (s *SQLiteStore) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = ?`, id)
	return scanCompany(row)
}

func (s *SQLiteStore) GetCompanyByName(ctx context.Context, name string) (*model.Company, error) {
	// Exact, case-sensitive match. Normalized matching belongs to the
	// company directory, not the store.
	row := s.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE name = ? LIMIT 1`, name)
	return scanCompany(row)
}

func (s *SQLiteStore) ListCompanies(ctx context.Context) ([]model.Company, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list companies")
	}
	defer rows.Close()

	var out []model.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list companies iterate")
}

func (s *SQLiteStore) DeleteCompany(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin delete company")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM outreach WHERE company_id = ?`, id); err != nil {
		return eris.Wrapf(err, "sqlite: delete outreach for company %s", id)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM contacts WHERE company_id = ?`, id); err != nil {
		return eris.Wrapf(err, "sqlite: delete contacts for company %s", id)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM signals WHERE company_id = ?`, id); err != nil {
		return eris.Wrapf(err, "sqlite: delete signals for company %s", id)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete company %s", id)
	}
	if err := checkRowsAffected(res, "company", id); err != nil {
		return err
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit delete company")
}

// Contacts

func (s *SQLiteStore) CreateContact(ctx context.Context, c *model.Contact) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = model.StatusNotContacted
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (id, company_id, name, title, job_level, job_function, role_type, persona_score, status, linkedin_url, email, source, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CompanyID, c.Name, c.Title, c.JobLevel, c.JobFunction, c.RoleType, c.PersonaScore, string(c.Status), c.LinkedInURL, c.Email, c.Source, c.CreatedAt, c.UpdatedAt,
	)
	return eris.Wrap(err, "sqlite: insert contact")
}

func (s *SQLiteStore) UpdateContact(ctx context.Context, c *model.Contact) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE contacts SET name = ?, title = ?, job_level = ?, job_function = ?, role_type = ?, persona_score = ?, status = ?, linkedin_url = ?, email = ?, source = ?, updated_at = ?
		 WHERE id = ?`,
		c.Name, c.Title, c.JobLevel, c.JobFunction, c.RoleType, c.PersonaScore, string(c.Status), c.LinkedInURL, c.Email, c.Source, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update contact %s", c.ID)
	}
	return checkRowsAffected(res, "contact", c.ID)
}

func (s *SQLiteStore) UpdateContactStatus(ctx context.Context, id string, status model.OutreachStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE contacts SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update contact status %s", id)
	}
	return checkRowsAffected(res, "contact", id)
}

const contactColumns = `id, company_id, name, title, job_level, job_function, role_type, persona_score, status, linkedin_url, email, source, created_at, updated_at`

func (s *SQLiteStore) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)
	return scanContact(row)
}

func (s *SQLiteStore) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return s.queryContacts(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY persona_score DESC`)
}

func (s *SQLiteStore) ListContactsByCompany(ctx context.Context, companyID string) ([]model.Contact, error) {
	return s.queryContacts(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE company_id = ? ORDER BY persona_score DESC`, companyID)
}

func (s *SQLiteStore) queryContacts(ctx context.Context, query string, args ...any) ([]model.Contact, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query contacts")
	}
	defer rows.Close()

	var out []model.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: query contacts iterate")
}

func (s *SQLiteStore) DeleteContact(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin delete contact")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM outreach WHERE contact_id = ?`, id); err != nil {
		return eris.Wrapf(err, "sqlite: delete outreach for contact %s", id)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete contact %s", id)
	}
	if err := checkRowsAffected(res, "contact", id); err != nil {
		return err
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit delete contact")
}

// Outreach

func (s *SQLiteStore) CreateOutreach(ctx context.Context, o *model.Outreach) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.SentAt.IsZero() {
		o.SentAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO outreach (id, contact_id, company_id, channel, message_type, sent_at, response, responded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.ContactID, o.CompanyID, o.Channel, o.MessageType, o.SentAt, o.Response, o.RespondedAt,
	)
	return eris.Wrap(err, "sqlite: insert outreach")
}

func (s *SQLiteStore) AttachResponse(ctx context.Context, id, response string, respondedAt time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE outreach SET response = ?, responded_at = ? WHERE id = ?`,
		response, respondedAt, id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: attach response %s", id)
	}
	return checkRowsAffected(res, "outreach", id)
}

const outreachColumns = `id, contact_id, company_id, channel, message_type, sent_at, response, responded_at`

func (s *SQLiteStore) GetOutreach(ctx context.Context, id string) (*model.Outreach, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+outreachColumns+` FROM outreach WHERE id = ?`, id)
	return scanOutreach(row)
}

func (s *SQLiteStore) ListOutreachByContact(ctx context.Context, contactID string) ([]model.Outreach, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+outreachColumns+` FROM outreach WHERE contact_id = ? ORDER BY sent_at`, contactID)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list outreach")
	}
	defer rows.Close()

	var out []model.Outreach
	for rows.Next() {
		o, err := scanOutreach(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list outreach iterate")
}

// Signals

func (s *SQLiteStore) CreateSignal(ctx context.Context, sig *model.Signal) error {
	if sig.ID == "" {
		sig.ID = uuid.New().String()
	}
	if sig.DiscoveredAt.IsZero() {
		sig.DiscoveredAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO signals (id, company_id, type, text, source_url, relevance_score, discovered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sig.ID, sig.CompanyID, sig.Type, sig.Text, sig.SourceURL, sig.RelevanceScore, sig.DiscoveredAt,
	)
	return eris.Wrap(err, "sqlite: insert signal")
}

func (s *SQLiteStore) ListSignalsByCompany(ctx context.Context, companyID string) ([]model.Signal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company_id, type, text, source_url, relevance_score, discovered_at
		 FROM signals WHERE company_id = ? ORDER BY discovered_at DESC`, companyID)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list signals")
	}
	defer rows.Close()

	var out []model.Signal
	for rows.Next() {
		var sig model.Signal
		if err := rows.Scan(&sig.ID, &sig.CompanyID, &sig.Type, &sig.Text, &sig.SourceURL, &sig.RelevanceScore, &sig.DiscoveredAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan signal")
		}
		out = append(out, sig)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list signals iterate")
}

// Team members

func (s *SQLiteStore) CreateTeamMember(ctx context.Context, m *model.TeamMember) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO team_members (id, name, role, linkedin_url, active, connection_count, icp_connection_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Role, m.LinkedInURL, m.Active, m.ConnectionCount, m.ICPConnectionCount, m.CreatedAt,
	)
	return eris.Wrap(err, "sqlite: insert team member")
}

const teamMemberColumns = `id, name, role, linkedin_url, active, connection_count, icp_connection_count, created_at`

func (s *SQLiteStore) GetTeamMember(ctx context.Context, id string) (*model.TeamMember, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members WHERE id = ?`, id)
	return scanTeamMember(row)
}

func (s *SQLiteStore) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members ORDER BY name`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list team members")
	}
	defer rows.Close()

	var out []model.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list team members iterate")
}

func (s *SQLiteStore) SetTeamMemberActive(ctx context.Context, id string, active bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE team_members SET active = ? WHERE id = ?`, active, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: set team member active %s", id)
	}
	return checkRowsAffected(res, "team member", id)
}

func (s *SQLiteStore) UpdateTeamMemberCounts(ctx context.Context, id string, total, icp int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE team_members SET connection_count = ?, icp_connection_count = ? WHERE id = ?`,
		total, icp, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update team member counts %s", id)
	}
	return checkRowsAffected(res, "team member", id)
}

// Connections

func (s *SQLiteStore) CreateConnection(ctx context.Context, c *model.Connection) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.ExtractedAt.IsZero() {
		c.ExtractedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO connections (id, team_member_id, name, title, company, location, profile_url, is_icp_match, company_id, extracted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.TeamMemberID, c.Name, c.Title, c.Company, c.Location, c.ProfileURL, c.IsICPMatch, c.CompanyID, c.ExtractedAt,
	)
	return eris.Wrap(err, "sqlite: insert connection")
}

func (s *SQLiteStore) UpdateConnection(ctx context.Context, c *model.Connection) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE connections SET name = ?, title = ?, company = ?, location = ?, is_icp_match = ?, company_id = ?, extracted_at = ?
		 WHERE id = ?`,
		c.Name, c.Title, c.Company, c.Location, c.IsICPMatch, c.CompanyID, c.ExtractedAt, c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update connection %s", c.ID)
	}
	return checkRowsAffected(res, "connection", c.ID)
}

func (s *SQLiteStore) UpdateConnectionMatch(ctx context.Context, id string, isICP bool, companyID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE connections SET is_icp_match = ?, company_id = ? WHERE id = ?`,
		isICP, companyID, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update connection match %s", id)
	}
	return checkRowsAffected(res, "connection", id)
}

const connectionColumns = `id, team_member_id, name, title, company, location, profile_url, is_icp_match, company_id, extracted_at`

func (s *SQLiteStore) GetConnectionByKey(ctx context.Context, profileURL, teamMemberID string) (*model.Connection, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE profile_url = ? AND team_member_id = ?`,
		profileURL, teamMemberID)
	return scanConnection(row)
}

func (s *SQLiteStore) ListConnections(ctx context.Context) ([]model.Connection, error) {
	return s.queryConnections(ctx, `SELECT `+connectionColumns+` FROM connections ORDER BY extracted_at`)
}

func (s *SQLiteStore) ListConnectionsByTeamMember(ctx context.Context, teamMemberID string) ([]model.Connection, error) {
	return s.queryConnections(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE team_member_id = ? ORDER BY extracted_at`, teamMemberID)
}

func (s *SQLiteStore) queryConnections(ctx context.Context, query string, args ...any) ([]model.Connection, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query connections")
	}
	defer rows.Close()

	var out []model.Connection
	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: query connections iterate")
}

func (s *SQLiteStore) DeleteConnection(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM connections WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete connection %s", id)
	}
	return checkRowsAffected(res, "connection", id)
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}

func marshalTitles(titles []string) (string, error) {
	if len(titles) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(titles)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: marshal titles")
	}
	return string(b), nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanCompany(row scannable) (*model.Company, error) {
	var c model.Company
	var titlesJSON string
	err := row.Scan(&c.ID, &c.Name, &c.Domain, &c.ICPSegment, &c.PriorityTier, &c.SignalTier, &c.FitNote, &titlesJSON, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan company")
	}
	if titlesJSON != "" && titlesJSON != "[]" {
		if err := json.Unmarshal([]byte(titlesJSON), &c.DecisionMakerTitles); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal titles")
		}
	}
	return &c, nil
}

func scanContact(row scannable) (*model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Title, &c.JobLevel, &c.JobFunction, &c.RoleType, &c.PersonaScore, &c.Status, &c.LinkedInURL, &c.Email, &c.Source, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan contact")
	}
	return &c, nil
}

func scanOutreach(row scannable) (*model.Outreach, error) {
	var o model.Outreach
	var response sql.NullString
	var respondedAt sql.NullTime
	err := row.Scan(&o.ID, &o.ContactID, &o.CompanyID, &o.Channel, &o.MessageType, &o.SentAt, &response, &respondedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan outreach")
	}
	o.Response = response.String
	if respondedAt.Valid {
		t := respondedAt.Time
		o.RespondedAt = &t
	}
	return &o, nil
}

func scanTeamMember(row scannable) (*model.TeamMember, error) {
	var m model.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.LinkedInURL, &m.Active, &m.ConnectionCount, &m.ICPConnectionCount, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan team member")
	}
	return &m, nil
}

func scanConnection(row scannable) (*model.Connection, error) {
	var c model.Connection
	var companyID sql.NullString
	err := row.Scan(&c.ID, &c.TeamMemberID, &c.Name, &c.Title, &c.Company, &c.Location, &c.ProfileURL, &c.IsICPMatch, &companyID, &c.ExtractedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan connection")
	}
	c.CompanyID = companyID.String
	return &c, nil
}
