// Package store provides persistence for the pipeline tracker with SQLite
// and Postgres backends behind a single interface.
package store

import (
	"context"
	"time"

	"github.com/sells-group/pipeline-cli/internal/model"
)

// Store defines persistence operations for the tracker. The core never
// joins in the database: batch passes fetch full collections and join in
// memory, single-record operations fetch by reference.
//
// Get* methods return (nil, nil) when no record matches; Update*/Delete*
// methods return a "not found" error for a missing identifier.
type Store interface {
	Migrate(ctx context.Context) error
	Close() error

	// Companies
	CreateCompany(ctx context.Context, c *model.Company) error
	UpdateCompany(ctx context.Context, c *model.Company) error
	UpdateCompanyStatus(ctx context.Context, id string, status model.CompanyStatus) error
	GetCompany(ctx context.Context, id string) (*model.Company, error)
	GetCompanyByName(ctx context.Context, name string) (*model.Company, error)
	ListCompanies(ctx context.Context) ([]model.Company, error)
	// DeleteCompany cascades to the company's contacts (and their
	// outreach) and signals. Connections keep their record; their match
	// is cleared by the next rematch pass.
	DeleteCompany(ctx context.Context, id string) error

	// Contacts
	CreateContact(ctx context.Context, c *model.Contact) error
	UpdateContact(ctx context.Context, c *model.Contact) error
	UpdateContactStatus(ctx context.Context, id string, status model.OutreachStatus) error
	GetContact(ctx context.Context, id string) (*model.Contact, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)
	ListContactsByCompany(ctx context.Context, companyID string) ([]model.Contact, error)
	DeleteContact(ctx context.Context, id string) error

	// Outreach
	CreateOutreach(ctx context.Context, o *model.Outreach) error
	AttachResponse(ctx context.Context, id, response string, respondedAt time.Time) error
	GetOutreach(ctx context.Context, id string) (*model.Outreach, error)
	ListOutreachByContact(ctx context.Context, contactID string) ([]model.Outreach, error)

	// Signals
	CreateSignal(ctx context.Context, s *model.Signal) error
	ListSignalsByCompany(ctx context.Context, companyID string) ([]model.Signal, error)

	// Team members
	CreateTeamMember(ctx context.Context, m *model.TeamMember) error
	GetTeamMember(ctx context.Context, id string) (*model.TeamMember, error)
	ListTeamMembers(ctx context.Context) ([]model.TeamMember, error)
	SetTeamMemberActive(ctx context.Context, id string, active bool) error
	UpdateTeamMemberCounts(ctx context.Context, id string, total, icp int) error

	// Connections
	CreateConnection(ctx context.Context, c *model.Connection) error
	UpdateConnection(ctx context.Context, c *model.Connection) error
	UpdateConnectionMatch(ctx context.Context, id string, isICP bool, companyID string) error
	GetConnectionByKey(ctx context.Context, profileURL, teamMemberID string) (*model.Connection, error)
	ListConnections(ctx context.Context) ([]model.Connection, error)
	ListConnectionsByTeamMember(ctx context.Context, teamMemberID string) ([]model.Connection, error)
	DeleteConnection(ctx context.Context, id string) error
}
