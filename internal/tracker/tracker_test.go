package tracker

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

func newTestTracker(t *testing.T) (*Tracker, store.Store) {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { s.Close() })
	return New(s), s
}

func seedContact(t *testing.T, s store.Store) *model.Contact {
	t.Helper()
	ctx := context.Background()
	c := &model.Company{Name: "Acme"}
	require.NoError(t, s.CreateCompany(ctx, c))
	contact := &model.Contact{CompanyID: c.ID, Name: "Jane", Title: "VP of Product"}
	require.NoError(t, s.CreateContact(ctx, contact))
	return contact
}

func TestRecordOutreach(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)
	contact := seedContact(t, s)

	o, err := tr.RecordOutreach(ctx, contact.ID, model.ChannelEmail, "intro")
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, contact.CompanyID, o.CompanyID)
	assert.False(t, o.SentAt.IsZero())

	got, err := s.GetContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusEmailSent, got.Status)
}

func TestRecordOutreach_StatusNeverRegresses(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)
	contact := seedContact(t, s)

	require.NoError(t, s.UpdateContactStatus(ctx, contact.ID, model.StatusReplied))

	// A later send does not pull a replied contact back to sent.
	_, err := tr.RecordOutreach(ctx, contact.ID, model.ChannelLinkedIn, "followup")
	require.NoError(t, err)

	got, err := s.GetContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReplied, got.Status)

	// The event itself is still recorded.
	events, err := s.ListOutreachByContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRecordOutreach_MissingContact(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.RecordOutreach(context.Background(), "nope", model.ChannelEmail, "intro")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing reference")
}

func TestRecordResponse(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)
	contact := seedContact(t, s)

	o, err := tr.RecordOutreach(ctx, contact.ID, model.ChannelEmail, "intro")
	require.NoError(t, err)

	require.NoError(t, tr.RecordResponse(ctx, o.ID, "thanks, tell me more"))

	got, err := s.GetOutreach(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "thanks, tell me more", got.Response)
	require.NotNil(t, got.RespondedAt)

	updated, err := s.GetContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReplied, updated.Status)
}

func TestRecordResponse_MeetingBooksMeeting(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)
	contact := seedContact(t, s)

	o, err := tr.RecordOutreach(ctx, contact.ID, model.ChannelEmail, "intro")
	require.NoError(t, err)

	require.NoError(t, tr.RecordResponse(ctx, o.ID, "Sure, let's set up a meeting next week"))

	updated, err := s.GetContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusMeetingBooked, updated.Status)

	// A plain reply afterwards does not demote the contact.
	o2, err := tr.RecordOutreach(ctx, contact.ID, model.ChannelEmail, "logistics")
	require.NoError(t, err)
	require.NoError(t, tr.RecordResponse(ctx, o2.ID, "ok"))

	updated, err = s.GetContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusMeetingBooked, updated.Status)
}

func TestRecordResponse_MissingOutreach(t *testing.T) {
	tr, _ := newTestTracker(t)

	err := tr.RecordResponse(context.Background(), "nope", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing reference")
}

func TestAddSignal(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)
	c := &model.Company{Name: "Acme"}
	require.NoError(t, s.CreateCompany(ctx, c))

	sig := &model.Signal{CompanyID: c.ID, Type: model.SignalHiring, Text: "hiring PMs", RelevanceScore: 80}
	require.NoError(t, tr.AddSignal(ctx, sig))

	list, err := s.ListSignalsByCompany(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	err = tr.AddSignal(ctx, &model.Signal{CompanyID: "nope", Type: model.SignalNews})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing reference")
}

func TestAddContact_DerivesPersona(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)
	c := &model.Company{Name: "Acme"}
	require.NoError(t, s.CreateCompany(ctx, c))

	contact := &model.Contact{
		CompanyID: c.ID,
		Name:      "Jane",
		Title:     "VP, Customer Success",
		// Caller-supplied persona fields are overwritten.
		PersonaScore: 1,
		RoleType:     "bogus",
	}
	require.NoError(t, tr.AddContact(ctx, contact))

	got, err := s.GetContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "VP", got.JobLevel)
	assert.Equal(t, "Customer Success", got.JobFunction)
	assert.Equal(t, "Decision Maker", got.RoleType)
	assert.Equal(t, 92, got.PersonaScore)
}

func TestAddContact_MissingCompany(t *testing.T) {
	tr, _ := newTestTracker(t)

	err := tr.AddContact(context.Background(), &model.Contact{CompanyID: "nope", Name: "Jane"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing reference")
}
