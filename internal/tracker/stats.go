package tracker

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/pipeline-cli/internal/persona"
)

// Stats is a point-in-time snapshot of the pipeline. All figures are
// derived from full-collection reads; nothing here is incrementally
// maintained.
type Stats struct {
	Companies         int            `json:"companies"`
	CompaniesByStatus map[string]int `json:"companies_by_status"`
	Contacts          int            `json:"contacts"`
	ContactsByStatus  map[string]int `json:"contacts_by_status"`
	DecisionMakers    int            `json:"decision_makers"`
	AvgPersonaScore   float64        `json:"avg_persona_score"`
	Connections       int            `json:"connections"`
	ICPConnections    int            `json:"icp_connections"`
	ConnectionICPRate float64        `json:"connection_icp_rate"`
	ActiveTeamMembers int            `json:"active_team_members"`
}

// Stats computes pipeline statistics from the current store contents.
func (t *Tracker) Stats(ctx context.Context) (*Stats, error) {
	s := &Stats{
		CompaniesByStatus: make(map[string]int),
		ContactsByStatus:  make(map[string]int),
	}

	companies, err := t.store.ListCompanies(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "tracker: stats companies")
	}
	s.Companies = len(companies)
	for _, c := range companies {
		s.CompaniesByStatus[string(c.Status)]++
	}

	contacts, err := t.store.ListContacts(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "tracker: stats contacts")
	}
	s.Contacts = len(contacts)
	var scoreSum int
	for _, c := range contacts {
		s.ContactsByStatus[string(c.Status)]++
		scoreSum += c.PersonaScore
		if c.RoleType == persona.RoleDecisionMaker {
			s.DecisionMakers++
		}
	}
	if s.Contacts > 0 {
		s.AvgPersonaScore = float64(scoreSum) / float64(s.Contacts)
	}

	conns, err := t.store.ListConnections(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "tracker: stats connections")
	}
	s.Connections = len(conns)
	for _, c := range conns {
		if c.IsICPMatch {
			s.ICPConnections++
		}
	}
	if s.Connections > 0 {
		s.ConnectionICPRate = float64(s.ICPConnections) / float64(s.Connections)
	}

	members, err := t.store.ListTeamMembers(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "tracker: stats team members")
	}
	for _, m := range members {
		if m.Active {
			s.ActiveTeamMembers++
		}
	}

	return s, nil
}
