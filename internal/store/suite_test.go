package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/pipeline-cli/internal/model"
)

// runStoreSuite exercises the full Store contract against a backend.
// Backends that can run in-process (SQLite) run it directly; the Postgres
// implementation is covered separately with pgxmock.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("company lifecycle", func(t *testing.T) {
		s := newStore(t)

		c := &model.Company{
			Name:                "Acme Inc.",
			Domain:              "acme.com",
			ICPSegment:          "mid-market",
			DecisionMakerTitles: []string{"VP of Product", "CTO"},
		}
		require.NoError(t, s.CreateCompany(ctx, c))
		require.NotEmpty(t, c.ID)
		assert.Equal(t, model.CompanyStatusResearch, c.Status)

		got, err := s.GetCompany(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Acme Inc.", got.Name)
		assert.Equal(t, []string{"VP of Product", "CTO"}, got.DecisionMakerTitles)

		got.Notes = "warm intro available"
		require.NoError(t, s.UpdateCompany(ctx, got))
		require.NoError(t, s.UpdateCompanyStatus(ctx, c.ID, model.CompanyStatusOutreach))

		got, err = s.GetCompany(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "warm intro available", got.Notes)
		assert.Equal(t, model.CompanyStatusOutreach, got.Status)

		list, err := s.ListCompanies(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("company name lookup is exact and case-sensitive", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.CreateCompany(ctx, &model.Company{Name: "Acme Inc."}))

		got, err := s.GetCompanyByName(ctx, "Acme Inc.")
		require.NoError(t, err)
		require.NotNil(t, got)

		got, err = s.GetCompanyByName(ctx, "acme inc.")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = s.GetCompanyByName(ctx, "Acme")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("get miss returns nil without error", func(t *testing.T) {
		s := newStore(t)

		company, err := s.GetCompany(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, company)

		contact, err := s.GetContact(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, contact)

		member, err := s.GetTeamMember(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, member)

		conn, err := s.GetConnectionByKey(ctx, "https://nope", "nope")
		require.NoError(t, err)
		assert.Nil(t, conn)
	})

	t.Run("update and delete missing return not found", func(t *testing.T) {
		s := newStore(t)

		err := s.UpdateCompanyStatus(ctx, "nope", model.CompanyStatusDead)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")

		err = s.UpdateContact(ctx, &model.Contact{ID: "nope", Name: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")

		err = s.DeleteCompany(ctx, "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")

		err = s.DeleteConnection(ctx, "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("contacts ordered by persona score", func(t *testing.T) {
		s := newStore(t)
		c := &model.Company{Name: "Acme"}
		require.NoError(t, s.CreateCompany(ctx, c))

		for _, contact := range []model.Contact{
			{CompanyID: c.ID, Name: "Low", PersonaScore: 55},
			{CompanyID: c.ID, Name: "High", PersonaScore: 95},
			{CompanyID: c.ID, Name: "Mid", PersonaScore: 70},
		} {
			cc := contact
			require.NoError(t, s.CreateContact(ctx, &cc))
		}

		list, err := s.ListContactsByCompany(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "High", list[0].Name)
		assert.Equal(t, "Mid", list[1].Name)
		assert.Equal(t, "Low", list[2].Name)
		assert.Equal(t, model.StatusNotContacted, list[0].Status)
	})

	t.Run("outreach response attachment", func(t *testing.T) {
		s := newStore(t)
		c := &model.Company{Name: "Acme"}
		require.NoError(t, s.CreateCompany(ctx, c))
		contact := &model.Contact{CompanyID: c.ID, Name: "Bob"}
		require.NoError(t, s.CreateContact(ctx, contact))

		o := &model.Outreach{ContactID: contact.ID, CompanyID: c.ID, Channel: model.ChannelEmail}
		require.NoError(t, s.CreateOutreach(ctx, o))
		require.False(t, o.SentAt.IsZero())

		respondedAt := time.Now().UTC()
		require.NoError(t, s.AttachResponse(ctx, o.ID, "sounds interesting", respondedAt))

		got, err := s.GetOutreach(ctx, o.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "sounds interesting", got.Response)
		require.NotNil(t, got.RespondedAt)

		list, err := s.ListOutreachByContact(ctx, contact.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("company delete cascades", func(t *testing.T) {
		s := newStore(t)
		c := &model.Company{Name: "Acme"}
		require.NoError(t, s.CreateCompany(ctx, c))
		contact := &model.Contact{CompanyID: c.ID, Name: "Bob"}
		require.NoError(t, s.CreateContact(ctx, contact))
		o := &model.Outreach{ContactID: contact.ID, CompanyID: c.ID, Channel: model.ChannelEmail}
		require.NoError(t, s.CreateOutreach(ctx, o))
		require.NoError(t, s.CreateSignal(ctx, &model.Signal{CompanyID: c.ID, Type: model.SignalHiring, Text: "hiring PMs"}))

		require.NoError(t, s.DeleteCompany(ctx, c.ID))

		gone, err := s.GetCompany(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		goneContact, err := s.GetContact(ctx, contact.ID)
		require.NoError(t, err)
		assert.Nil(t, goneContact)

		goneOutreach, err := s.GetOutreach(ctx, o.ID)
		require.NoError(t, err)
		assert.Nil(t, goneOutreach)

		signals, err := s.ListSignalsByCompany(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, signals)
	})

	t.Run("contact delete cascades to outreach", func(t *testing.T) {
		s := newStore(t)
		c := &model.Company{Name: "Acme"}
		require.NoError(t, s.CreateCompany(ctx, c))
		contact := &model.Contact{CompanyID: c.ID, Name: "Bob"}
		require.NoError(t, s.CreateContact(ctx, contact))
		o := &model.Outreach{ContactID: contact.ID, CompanyID: c.ID, Channel: model.ChannelLinkedIn}
		require.NoError(t, s.CreateOutreach(ctx, o))

		require.NoError(t, s.DeleteContact(ctx, contact.ID))

		goneOutreach, err := s.GetOutreach(ctx, o.ID)
		require.NoError(t, err)
		assert.Nil(t, goneOutreach)
	})

	t.Run("signals listed newest first", func(t *testing.T) {
		s := newStore(t)
		c := &model.Company{Name: "Acme"}
		require.NoError(t, s.CreateCompany(ctx, c))

		old := &model.Signal{CompanyID: c.ID, Type: model.SignalNews, Text: "old", DiscoveredAt: time.Now().UTC().Add(-time.Hour)}
		require.NoError(t, s.CreateSignal(ctx, old))
		fresh := &model.Signal{CompanyID: c.ID, Type: model.SignalFunding, Text: "fresh", DiscoveredAt: time.Now().UTC()}
		require.NoError(t, s.CreateSignal(ctx, fresh))

		list, err := s.ListSignalsByCompany(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "fresh", list[0].Text)
	})

	t.Run("team member lifecycle", func(t *testing.T) {
		s := newStore(t)
		m := &model.TeamMember{Name: "Alice", Role: "AE", Active: true}
		require.NoError(t, s.CreateTeamMember(ctx, m))

		require.NoError(t, s.UpdateTeamMemberCounts(ctx, m.ID, 10, 3))
		require.NoError(t, s.SetTeamMemberActive(ctx, m.ID, false))

		got, err := s.GetTeamMember(ctx, m.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 10, got.ConnectionCount)
		assert.Equal(t, 3, got.ICPConnectionCount)
		assert.False(t, got.Active)
	})

	t.Run("connection key and listing", func(t *testing.T) {
		s := newStore(t)
		alice := &model.TeamMember{Name: "Alice", Active: true}
		require.NoError(t, s.CreateTeamMember(ctx, alice))
		carol := &model.TeamMember{Name: "Carol", Active: true}
		require.NoError(t, s.CreateTeamMember(ctx, carol))

		// Same profile under two members is two records.
		for _, memberID := range []string{alice.ID, carol.ID} {
			require.NoError(t, s.CreateConnection(ctx, &model.Connection{
				TeamMemberID: memberID,
				Name:         "Bob",
				ProfileURL:   "https://linkedin.com/in/bob",
			}))
		}

		all, err := s.ListConnections(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		byAlice, err := s.ListConnectionsByTeamMember(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, byAlice, 1)

		got, err := s.GetConnectionByKey(ctx, "https://linkedin.com/in/bob", alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, byAlice[0].ID, got.ID)

		require.NoError(t, s.UpdateConnectionMatch(ctx, got.ID, true, "some-company"))
		got, err = s.GetConnectionByKey(ctx, "https://linkedin.com/in/bob", alice.ID)
		require.NoError(t, err)
		assert.True(t, got.IsICPMatch)
		assert.Equal(t, "some-company", got.CompanyID)

		require.NoError(t, s.DeleteConnection(ctx, got.ID))
		gone, err := s.GetConnectionByKey(ctx, "https://linkedin.com/in/bob", alice.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("duplicate connection key rejected", func(t *testing.T) {
		s := newStore(t)
		m := &model.TeamMember{Name: "Alice", Active: true}
		require.NoError(t, s.CreateTeamMember(ctx, m))

		conn := model.Connection{TeamMemberID: m.ID, ProfileURL: "https://linkedin.com/in/bob"}
		first := conn
		require.NoError(t, s.CreateConnection(ctx, &first))
		second := conn
		assert.Error(t, s.CreateConnection(ctx, &second))
	})
}
