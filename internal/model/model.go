// Package model defines the domain entities for the sales-pipeline tracker.
package model

import "time"

// Company is a tracked target account. Uniqueness is enforced by
// normalized-name equality, not exact string equality.
type Company struct {
	ID                  string        `json:"id" db:"id"`
	Name                string        `json:"name" db:"name"`
	Domain              string        `json:"domain,omitempty" db:"domain"`
	ICPSegment          string        `json:"icp_segment,omitempty" db:"icp_segment"`
	PriorityTier        string        `json:"priority_tier,omitempty" db:"priority_tier"`
	SignalTier          string        `json:"signal_tier,omitempty" db:"signal_tier"`
	FitNote             string        `json:"fit_note,omitempty" db:"fit_note"`
	DecisionMakerTitles []string      `json:"decision_maker_titles,omitempty" db:"decision_maker_titles"`
	Status              CompanyStatus `json:"status" db:"status"`
	Notes               string        `json:"notes,omitempty" db:"notes"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" db:"updated_at"`
}

// CompanyStatus is the pipeline stage of a target company.
type CompanyStatus string

// Pipeline stages.
const (
	CompanyStatusResearch CompanyStatus = "research"
	CompanyStatusOutreach CompanyStatus = "outreach"
	CompanyStatusEngaged  CompanyStatus = "engaged"
	CompanyStatusMeeting  CompanyStatus = "meeting"
	CompanyStatusClosed   CompanyStatus = "closed"
	CompanyStatusDead     CompanyStatus = "dead"
)

// Contact is a person at a target company. The persona fields are derived
// from the raw title at ingestion time and are never edited independently.
type Contact struct {
	ID           string         `json:"id" db:"id"`
	CompanyID    string         `json:"company_id" db:"company_id"`
	Name         string         `json:"name" db:"name"`
	Title        string         `json:"title,omitempty" db:"title"`
	JobLevel     string         `json:"job_level,omitempty" db:"job_level"`
	JobFunction  string         `json:"job_function,omitempty" db:"job_function"`
	RoleType     string         `json:"role_type,omitempty" db:"role_type"`
	PersonaScore int            `json:"persona_score" db:"persona_score"`
	Status       OutreachStatus `json:"status" db:"status"`
	LinkedInURL  string         `json:"linkedin_url,omitempty" db:"linkedin_url"`
	Email        string         `json:"email,omitempty" db:"email"`
	Source       string         `json:"source,omitempty" db:"source"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// OutreachStatus tracks how far outreach to a contact has progressed.
// Statuses only move forward; recording an outreach event is the only
// operation that advances them.
type OutreachStatus string

// Outreach statuses in rank order.
const (
	StatusNotContacted  OutreachStatus = "not_contacted"
	StatusEmailSent     OutreachStatus = "email_sent"
	StatusLinkedInSent  OutreachStatus = "linkedin_sent"
	StatusReplied       OutreachStatus = "replied"
	StatusMeetingBooked OutreachStatus = "meeting_booked"
)

// statusRank orders outreach statuses for forward-only transitions.
// EmailSent and LinkedInSent share a rank: a contact reached on both
// channels keeps whichever status was recorded last.
var statusRank = map[OutreachStatus]int{
	StatusNotContacted:  0,
	StatusEmailSent:     1,
	StatusLinkedInSent:  1,
	StatusReplied:       2,
	StatusMeetingBooked: 3,
}

// Advance returns the status a contact should hold after an event that
// implies next. It never moves backwards.
func (s OutreachStatus) Advance(next OutreachStatus) OutreachStatus {
	if statusRank[next] < statusRank[s] {
		return s
	}
	return next
}

// Outreach is one send or response event tied to a contact. Append-only;
// the only mutation is attaching a response.
type Outreach struct {
	ID          string     `json:"id" db:"id"`
	ContactID   string     `json:"contact_id" db:"contact_id"`
	CompanyID   string     `json:"company_id" db:"company_id"`
	Channel     string     `json:"channel" db:"channel"`
	MessageType string     `json:"message_type,omitempty" db:"message_type"`
	SentAt      time.Time  `json:"sent_at" db:"sent_at"`
	Response    string     `json:"response,omitempty" db:"response"`
	RespondedAt *time.Time `json:"responded_at,omitempty" db:"responded_at"`
}

// Outreach channels.
const (
	ChannelEmail    = "email"
	ChannelLinkedIn = "linkedin"
)

// Signal is a discovered fact about a company (hiring, funding, etc).
type Signal struct {
	ID             string    `json:"id" db:"id"`
	CompanyID      string    `json:"company_id" db:"company_id"`
	Type           string    `json:"type" db:"type"`
	Text           string    `json:"text,omitempty" db:"text"`
	SourceURL      string    `json:"source_url,omitempty" db:"source_url"`
	RelevanceScore int       `json:"relevance_score" db:"relevance_score"`
	DiscoveredAt   time.Time `json:"discovered_at" db:"discovered_at"`
}

// Signal types.
const (
	SignalHiring  = "hiring"
	SignalFunding = "funding"
	SignalNews    = "news"
	SignalProduct = "product"
)

// TeamMember is an internal person whose professional network is harvested.
// The counters are recomputed from the connection collection at the end of
// each resolution pass, never incremented from call sites.
type TeamMember struct {
	ID                 string    `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Role               string    `json:"role,omitempty" db:"role"`
	LinkedInURL        string    `json:"linkedin_url,omitempty" db:"linkedin_url"`
	Active             bool      `json:"active" db:"active"`
	ConnectionCount    int       `json:"connection_count" db:"connection_count"`
	ICPConnectionCount int       `json:"icp_connection_count" db:"icp_connection_count"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// Connection is one harvested network edge: a person connected to a team
// member on LinkedIn. Uniqueness key is (ProfileURL, TeamMemberID): the
// same external profile under two team members is two distinct records.
type Connection struct {
	ID           string    `json:"id" db:"id"`
	TeamMemberID string    `json:"team_member_id" db:"team_member_id"`
	Name         string    `json:"name" db:"name"`
	Title        string    `json:"title,omitempty" db:"title"`
	Company      string    `json:"company,omitempty" db:"company"`
	Location     string    `json:"location,omitempty" db:"location"`
	ProfileURL   string    `json:"profile_url" db:"profile_url"`
	IsICPMatch   bool      `json:"is_icp_match" db:"is_icp_match"`
	CompanyID    string    `json:"company_id,omitempty" db:"company_id"`
	ExtractedAt  time.Time `json:"extracted_at" db:"extracted_at"`
}
