package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/pipeline-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies it
// in unit tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	cfg.MaxConns = 10
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS companies (
	id                    TEXT PRIMARY KEY,
	name                  TEXT NOT NULL,
	domain                TEXT NOT NULL DEFAULT '',
	icp_segment           TEXT NOT NULL DEFAULT '',
	priority_tier         TEXT NOT NULL DEFAULT '',
	signal_tier           TEXT NOT NULL DEFAULT '',
	fit_note              TEXT NOT NULL DEFAULT '',
	decision_maker_titles JSONB NOT NULL DEFAULT '[]',
	status                TEXT NOT NULL DEFAULT 'research',
	notes                 TEXT NOT NULL DEFAULT '',
	created_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at            TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS contacts (
	id            TEXT PRIMARY KEY,
	company_id    TEXT NOT NULL REFERENCES companies(id),
	name          TEXT NOT NULL,
	title         TEXT NOT NULL DEFAULT '',
	job_level     TEXT NOT NULL DEFAULT '',
	job_function  TEXT NOT NULL DEFAULT '',
	role_type     TEXT NOT NULL DEFAULT '',
	persona_score INTEGER NOT NULL DEFAULT 0,
	status        TEXT NOT NULL DEFAULT 'not_contacted',
	linkedin_url  TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL DEFAULT '',
	source        TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS outreach (
	id           TEXT PRIMARY KEY,
	contact_id   TEXT NOT NULL REFERENCES contacts(id),
	company_id   TEXT NOT NULL,
	channel      TEXT NOT NULL,
	message_type TEXT NOT NULL DEFAULT '',
	sent_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	response     TEXT,
	responded_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS signals (
	id              TEXT PRIMARY KEY,
	company_id      TEXT NOT NULL REFERENCES companies(id),
	type            TEXT NOT NULL,
	text            TEXT NOT NULL DEFAULT '',
	source_url      TEXT NOT NULL DEFAULT '',
	relevance_score INTEGER NOT NULL DEFAULT 0,
	discovered_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS team_members (
	id                   TEXT PRIMARY KEY,
	name                 TEXT NOT NULL,
	role                 TEXT NOT NULL DEFAULT '',
	linkedin_url         TEXT NOT NULL DEFAULT '',
	active               BOOLEAN NOT NULL DEFAULT true,
	connection_count     INTEGER NOT NULL DEFAULT 0,
	icp_connection_count INTEGER NOT NULL DEFAULT 0,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS connections (
	id             TEXT PRIMARY KEY,
	team_member_id TEXT NOT NULL REFERENCES team_members(id),
	name           TEXT NOT NULL DEFAULT '',
	title          TEXT NOT NULL DEFAULT '',
	company        TEXT NOT NULL DEFAULT '',
	location       TEXT NOT NULL DEFAULT '',
	profile_url    TEXT NOT NULL,
	is_icp_match   BOOLEAN NOT NULL DEFAULT false,
	company_id     TEXT,
	extracted_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE(profile_url, team_member_id)
);

CREATE INDEX IF NOT EXISTS idx_companies_name ON companies(name);
CREATE INDEX IF NOT EXISTS idx_contacts_company_id ON contacts(company_id);
CREATE INDEX IF NOT EXISTS idx_outreach_contact_id ON outreach(contact_id);
CREATE INDEX IF NOT EXISTS idx_signals_company_id ON signals(company_id);
CREATE INDEX IF NOT EXISTS idx_connections_team_member_id ON connections(team_member_id);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Companies

func (s *PostgresStore) CreateCompany(ctx context.Context, c *model.Company) error {
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

	_, err = s.pool.Exec(ctx,
		`INSERT INTO companies (id, name, domain, icp_segment, priority_tier, signal_tier, fit_note, decision_maker_titles, status, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.Name, c.Domain, c.ICPSegment, c.PriorityTier, c.SignalTier, c.FitNote, titles, string(c.Status), c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	return eris.Wrap(err, "postgres: insert company")
}

func (s *PostgresStore) UpdateCompany(ctx context.Context, c *model.Company) error {
	c.UpdatedAt = time.Now().UTC()

	titles, err := marshalTitles(c.DecisionMakerTitles)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE companies SET name = $1, domain = $2, icp_segment = $3, priority_tier = $4, signal_tier = $5, fit_note = $6, decision_maker_titles = $7, status = $8, notes = $9, updated_at = $10
		 WHERE id = $11`,
		c.Name, c.Domain, c.ICPSegment, c.PriorityTier, c.SignalTier, c.FitNote, titles, string(c.Status), c.Notes, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update company %s", c.ID)
	}
	return checkTag(tag, "company", c.ID)
}

func (s *PostgresStore) UpdateCompanyStatus(ctx context.Context, id string, status model.CompanyStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE companies SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update company status %s", id)
	}
	return checkTag(tag, "company", id)
}

func (s *PostgresStore) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompanyPg(row)
}

func (s *PostgresStore) GetCompanyByName(ctx context.Context, name string) (*model.Company, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE name = $1 LIMIT 1`, name)
	return scanCompanyPg(row)
}

func (s *PostgresStore) ListCompanies(ctx context.Context) ([]model.Company, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list companies")
	}
	defer rows.Close()

	var out []model.Company
	for rows.Next() {
		c, err := scanCompanyPg(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list companies iterate")
}

func (s *PostgresStore) DeleteCompany(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "postgres: begin delete company")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM outreach WHERE company_id = $1`, id); err != nil {
		return eris.Wrapf(err, "postgres: delete outreach for company %s", id)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM contacts WHERE company_id = $1`, id); err != nil {
		return eris.Wrapf(err, "postgres: delete contacts for company %s", id)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM signals WHERE company_id = $1`, id); err != nil {
		return eris.Wrapf(err, "postgres: delete signals for company %s", id)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete company %s", id)
	}
	if err := checkTag(tag, "company", id); err != nil {
		return err
	}
	return eris.Wrap(tx.Commit(ctx), "postgres: commit delete company")
}

// Contacts

func (s *PostgresStore) CreateContact(ctx context.Context, c *model.Contact) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = model.StatusNotContacted
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO contacts (id, company_id, name, title, job_level, job_function, role_type, persona_score, status, linkedin_url, email, source, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		c.ID, c.CompanyID, c.Name, c.Title, c.JobLevel, c.JobFunction, c.RoleType, c.PersonaScore, string(c.Status), c.LinkedInURL, c.Email, c.Source, c.CreatedAt, c.UpdatedAt,
	)
	return eris.Wrap(err, "postgres: insert contact")
}

func (s *PostgresStore) UpdateContact(ctx context.Context, c *model.Contact) error {
	c.UpdatedAt = time.Now().UTC()
	tag, err := s.pool.Exec(ctx,
		`UPDATE contacts SET name = $1, title = $2, job_level = $3, job_function = $4, role_type = $5, persona_score = $6, status = $7, linkedin_url = $8, email = $9, source = $10, updated_at = $11
		 WHERE id = $12`,
		c.Name, c.Title, c.JobLevel, c.JobFunction, c.RoleType, c.PersonaScore, string(c.Status), c.LinkedInURL, c.Email, c.Source, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update contact %s", c.ID)
	}
	return checkTag(tag, "contact", c.ID)
}

func (s *PostgresStore) UpdateContactStatus(ctx context.Context, id string, status model.OutreachStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE contacts SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update contact status %s", id)
	}
	return checkTag(tag, "contact", id)
}

func (s *PostgresStore) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	return scanContactPg(row)
}

func (s *PostgresStore) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return s.queryContactsPg(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY persona_score DESC`)
}

func (s *PostgresStore) ListContactsByCompany(ctx context.Context, companyID string) ([]model.Contact, error) {
	return s.queryContactsPg(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE company_id = $1 ORDER BY persona_score DESC`, companyID)
}

func (s *PostgresStore) queryContactsPg(ctx context.Context, query string, args ...any) ([]model.Contact, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query contacts")
	}
	defer rows.Close()

	var out []model.Contact
	for rows.Next() {
		c, err := scanContactPg(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: query contacts iterate")
}

func (s *PostgresStore) DeleteContact(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "postgres: begin delete contact")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM outreach WHERE contact_id = $1`, id); err != nil {
		return eris.Wrapf(err, "postgres: delete outreach for contact %s", id)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete contact %s", id)
	}
	if err := checkTag(tag, "contact", id); err != nil {
		return err
	}
	return eris.Wrap(tx.Commit(ctx), "postgres: commit delete contact")
}

// Outreach

func (s *PostgresStore) CreateOutreach(ctx context.Context, o *model.Outreach) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.SentAt.IsZero() {
		o.SentAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO outreach (id, contact_id, company_id, channel, message_type, sent_at, response, responded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.ContactID, o.CompanyID, o.Channel, o.MessageType, o.SentAt, nullIfEmpty(o.Response), o.RespondedAt,
	)
	return eris.Wrap(err, "postgres: insert outreach")
}

func (s *PostgresStore) AttachResponse(ctx context.Context, id, response string, respondedAt time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE outreach SET response = $1, responded_at = $2 WHERE id = $3`,
		response, respondedAt, id,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: attach response %s", id)
	}
	return checkTag(tag, "outreach", id)
}

func (s *PostgresStore) GetOutreach(ctx context.Context, id string) (*model.Outreach, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+outreachColumns+` FROM outreach WHERE id = $1`, id)
	return scanOutreachPg(row)
}

func (s *PostgresStore) ListOutreachByContact(ctx context.Context, contactID string) ([]model.Outreach, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+outreachColumns+` FROM outreach WHERE contact_id = $1 ORDER BY sent_at`, contactID)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list outreach")
	}
	defer rows.Close()

	var out []model.Outreach
	for rows.Next() {
		o, err := scanOutreachPg(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list outreach iterate")
}

// Signals

func (s *PostgresStore) CreateSignal(ctx context.Context, sig *model.Signal) error {
	if sig.ID == "" {
		sig.ID = uuid.New().String()
	}
	if sig.DiscoveredAt.IsZero() {
		sig.DiscoveredAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO signals (id, company_id, type, text, source_url, relevance_score, discovered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sig.ID, sig.CompanyID, sig.Type, sig.Text, sig.SourceURL, sig.RelevanceScore, sig.DiscoveredAt,
	)
	return eris.Wrap(err, "postgres: insert signal")
}

func (s *PostgresStore) ListSignalsByCompany(ctx context.Context, companyID string) ([]model.Signal, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, company_id, type, text, source_url, relevance_score, discovered_at
		 FROM signals WHERE company_id = $1 ORDER BY discovered_at DESC`, companyID)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list signals")
	}
	defer rows.Close()

	var out []model.Signal
	for rows.Next() {
		var sig model.Signal
		if err := rows.Scan(&sig.ID, &sig.CompanyID, &sig.Type, &sig.Text, &sig.SourceURL, &sig.RelevanceScore, &sig.DiscoveredAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan signal")
		}
		out = append(out, sig)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list signals iterate")
}

// Team members

func (s *PostgresStore) CreateTeamMember(ctx context.Context, m *model.TeamMember) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO team_members (id, name, role, linkedin_url, active, connection_count, icp_connection_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.Name, m.Role, m.LinkedInURL, m.Active, m.ConnectionCount, m.ICPConnectionCount, m.CreatedAt,
	)
	return eris.Wrap(err, "postgres: insert team member")
}

func (s *PostgresStore) GetTeamMember(ctx context.Context, id string) (*model.TeamMember, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1`, id)
	return scanTeamMemberPg(row)
}

func (s *PostgresStore) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members ORDER BY name`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list team members")
	}
	defer rows.Close()

	var out []model.TeamMember
	for rows.Next() {
		m, err := scanTeamMemberPg(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list team members iterate")
}

func (s *PostgresStore) SetTeamMemberActive(ctx context.Context, id string, active bool) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE team_members SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: set team member active %s", id)
	}
	return checkTag(tag, "team member", id)
}

func (s *PostgresStore) UpdateTeamMemberCounts(ctx context.Context, id string, total, icp int) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE team_members SET connection_count = $1, icp_connection_count = $2 WHERE id = $3`,
		total, icp, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: update team member counts %s", id)
	}
	return checkTag(tag, "team member", id)
}

// Connections

func (s *PostgresStore) CreateConnection(ctx context.Context, c *model.Connection) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.ExtractedAt.IsZero() {
		c.ExtractedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO connections (id, team_member_id, name, title, company, location, profile_url, is_icp_match, company_id, extracted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.TeamMemberID, c.Name, c.Title, c.Company, c.Location, c.ProfileURL, c.IsICPMatch, nullIfEmpty(c.CompanyID), c.ExtractedAt,
	)
	return eris.Wrap(err, "postgres: insert connection")
}

func (s *PostgresStore) UpdateConnection(ctx context.Context, c *model.Connection) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE connections SET name = $1, title = $2, company = $3, location = $4, is_icp_match = $5, company_id = $6, extracted_at = $7
		 WHERE id = $8`,
		c.Name, c.Title, c.Company, c.Location, c.IsICPMatch, nullIfEmpty(c.CompanyID), c.ExtractedAt, c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update connection %s", c.ID)
	}
	return checkTag(tag, "connection", c.ID)
}

func (s *PostgresStore) UpdateConnectionMatch(ctx context.Context, id string, isICP bool, companyID string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE connections SET is_icp_match = $1, company_id = $2 WHERE id = $3`,
		isICP, nullIfEmpty(companyID), id)
	if err != nil {
		return eris.Wrapf(err, "postgres: update connection match %s", id)
	}
	return checkTag(tag, "connection", id)
}

func (s *PostgresStore) GetConnectionByKey(ctx context.Context, profileURL, teamMemberID string) (*model.Connection, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE profile_url = $1 AND team_member_id = $2`,
		profileURL, teamMemberID)
	return scanConnectionPg(row)
}

func (s *PostgresStore) ListConnections(ctx context.Context) ([]model.Connection, error) {
	return s.queryConnectionsPg(ctx, `SELECT `+connectionColumns+` FROM connections ORDER BY extracted_at`)
}

func (s *PostgresStore) ListConnectionsByTeamMember(ctx context.Context, teamMemberID string) ([]model.Connection, error) {
	return s.queryConnectionsPg(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE team_member_id = $1 ORDER BY extracted_at`, teamMemberID)
}

func (s *PostgresStore) queryConnectionsPg(ctx context.Context, query string, args ...any) ([]model.Connection, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query connections")
	}
	defer rows.Close()

	var out []model.Connection
	for rows.Next() {
		c, err := scanConnectionPg(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: query connections iterate")
}

func (s *PostgresStore) DeleteConnection(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM connections WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete connection %s", id)
	}
	return checkTag(tag, "connection", id)
}

// helpers

func checkTag(tag pgconn.CommandTag, entity, id string) error {
	if tag.RowsAffected() == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type pgRow interface {
	Scan(dest ...any) error
}

func scanCompanyPg(row pgRow) (*model.Company, error) {
	var c model.Company
	var titlesJSON []byte
	err := row.Scan(&c.ID, &c.Name, &c.Domain, &c.ICPSegment, &c.PriorityTier, &c.SignalTier, &c.FitNote, &titlesJSON, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan company")
	}
	if len(titlesJSON) > 0 {
		if err := json.Unmarshal(titlesJSON, &c.DecisionMakerTitles); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal titles")
		}
	}
	return &c, nil
}

func scanContactPg(row pgRow) (*model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Title, &c.JobLevel, &c.JobFunction, &c.RoleType, &c.PersonaScore, &c.Status, &c.LinkedInURL, &c.Email, &c.Source, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan contact")
	}
	return &c, nil
}

func scanOutreachPg(row pgRow) (*model.Outreach, error) {
	var o model.Outreach
	var response *string
	err := row.Scan(&o.ID, &o.ContactID, &o.CompanyID, &o.Channel, &o.MessageType, &o.SentAt, &response, &o.RespondedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan outreach")
	}
	if response != nil {
		o.Response = *response
	}
	return &o, nil
}

func scanTeamMemberPg(row pgRow) (*model.TeamMember, error) {
	var m model.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.LinkedInURL, &m.Active, &m.ConnectionCount, &m.ICPConnectionCount, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan team member")
	}
	return &m, nil
}

func scanConnectionPg(row pgRow) (*model.Connection, error) {
	var c model.Connection
	var companyID *string
	err := row.Scan(&c.ID, &c.TeamMemberID, &c.Name, &c.Title, &c.Company, &c.Location, &c.ProfileURL, &c.IsICPMatch, &companyID, &c.ExtractedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan connection")
	}
	if companyID != nil {
		c.CompanyID = *companyID
	}
	return &c, nil
}
