// Package ingest implements the bulk import boundary: company rows,
// contact rows, and connection rows arrive as plain structured data and
// are merged into the store with per-row skip accounting.
package ingest

import (
	"github.com/sells-group/pipeline-cli/internal/resolver"
	"github.com/sells-group/pipeline-cli/internal/store"
)

// Ingestor runs bulk imports against a store. Batch operations always
// return a summary, even on partial failure, so callers can retry just
// the failed subset.
type Ingestor struct {
	store    store.Store
	resolver *resolver.Resolver
}

// New creates an Ingestor.
func New(s store.Store) *Ingestor {
	return &Ingestor{store: s, resolver: resolver.New(s)}
}

// CompanyRow is one imported target-company record.
type CompanyRow struct {
	Name         string `json:"name" yaml:"name"`
	Domain       string `json:"domain" yaml:"domain"`
	ICPSegment   string `json:"icp_segment" yaml:"icp_segment"`
	PriorityTier string `json:"priority_tier" yaml:"priority_tier"`
	SignalTier   string `json:"signal_tier" yaml:"signal_tier"`
	FitNote      string `json:"fit_note" yaml:"fit_note"`
	Notes        string `json:"notes" yaml:"notes"`
}

// ContactRow is one imported contact record. CompanyName binds the contact
// to a company by exact stored name; Company carries the metadata used
// when that company does not exist yet.
type ContactRow struct {
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	CompanyName string     `json:"company_name"`
	LinkedInURL string     `json:"linkedin_url"`
	Email       string     `json:"email"`
	Source      string     `json:"source"`
	Company     CompanyRow `json:"company"`
}

// ConnectionRow is one harvested connection record for a single team
// member's network export.
type ConnectionRow struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	ProfileURL string `json:"profile_url"`
}

// CompanySummary reports a company import.
type CompanySummary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// ContactSummary reports a contact import.
type ContactSummary struct {
	CompaniesCreated int `json:"companies_created"`
	ContactsCreated  int `json:"contacts_created"`
	Skipped          int `json:"skipped"`
}

// ConnectionSummary reports a connection import.
type ConnectionSummary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Matched int `json:"matched"`
	Skipped int `json:"skipped"`
}
