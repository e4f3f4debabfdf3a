// Package tracker is the service layer over the store: outreach
// recording, signal capture, and pipeline statistics. It owns reference
// validation, so store backends never create orphans.
package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/model"
	"github.com/sells-group/pipeline-cli/internal/persona"
	"github.com/sells-group/pipeline-cli/internal/store"
)

// Tracker wraps a store with the tracker's business rules.
type Tracker struct {
	store store.Store
}

// New creates a Tracker.
func New(s store.Store) *Tracker {
	return &Tracker{store: s}
}

// RecordOutreach appends a send event for a contact and advances the
// contact's outreach status. Recording an event is the only way the
// status moves; it never moves backwards.
func (t *Tracker) RecordOutreach(ctx context.Context, contactID, channel, messageType string) (*model.Outreach, error) {
	contact, err := t.store.GetContact(ctx, contactID)
	if err != nil {
		return nil, eris.Wrap(err, "tracker: lookup contact")
	}
	if contact == nil {
		return nil, eris.Errorf("tracker: missing reference: contact %s", contactID)
	}

	o := &model.Outreach{
		ContactID:   contact.ID,
		CompanyID:   contact.CompanyID,
		Channel:     channel,
		MessageType: messageType,
	}
	if err := t.store.CreateOutreach(ctx, o); err != nil {
		return nil, err
	}

	next := model.StatusEmailSent
	if channel == model.ChannelLinkedIn {
		next = model.StatusLinkedInSent
	}
	if advanced := contact.Status.Advance(next); advanced != contact.Status {
		if err := t.store.UpdateContactStatus(ctx, contact.ID, advanced); err != nil {
			return nil, err
		}
	}

	zap.L().Info("outreach recorded",
		zap.String("contact", contact.Name),
		zap.String("channel", channel),
	)
	return o, nil
}

// RecordResponse attaches a response to an outreach event and advances the
// contact's status to Replied, or MeetingBooked when the response text
// mentions a meeting or call.
func (t *Tracker) RecordResponse(ctx context.Context, outreachID, response string) error {
	o, err := t.store.GetOutreach(ctx, outreachID)
	if err != nil {
		return eris.Wrap(err, "tracker: lookup outreach")
	}
	if o == nil {
		return eris.Errorf("tracker: missing reference: outreach %s", outreachID)
	}

	if err := t.store.AttachResponse(ctx, o.ID, response, time.Now().UTC()); err != nil {
		return err
	}

	contact, err := t.store.GetContact(ctx, o.ContactID)
	if err != nil {
		return eris.Wrap(err, "tracker: lookup contact")
	}
	if contact == nil {
		return eris.Errorf("tracker: missing reference: contact %s", o.ContactID)
	}

	next := model.StatusReplied
	lower := strings.ToLower(response)
	if strings.Contains(lower, "meeting") || strings.Contains(lower, "call") {
		next = model.StatusMeetingBooked
	}
	if advanced := contact.Status.Advance(next); advanced != contact.Status {
		if err := t.store.UpdateContactStatus(ctx, contact.ID, advanced); err != nil {
			return err
		}
	}
	return nil
}

// AddSignal records a discovered fact about a company. The company must
// exist.
func (t *Tracker) AddSignal(ctx context.Context, sig *model.Signal) error {
	comp, err := t.store.GetCompany(ctx, sig.CompanyID)
	if err != nil {
		return eris.Wrap(err, "tracker: lookup company")
	}
	if comp == nil {
		return eris.Errorf("tracker: missing reference: company %s", sig.CompanyID)
	}
	return t.store.CreateSignal(ctx, sig)
}

// AddContact creates a single manually entered contact after validating
// its company reference. The persona fields are always derived from the
// title here; callers cannot set the score independently.
func (t *Tracker) AddContact(ctx context.Context, c *model.Contact) error {
	comp, err := t.store.GetCompany(ctx, c.CompanyID)
	if err != nil {
		return eris.Wrap(err, "tracker: lookup company")
	}
	if comp == nil {
		return eris.Errorf("tracker: missing reference: company %s", c.CompanyID)
	}

	p := persona.Classify(c.Title)
	c.JobLevel = p.Level
	c.JobFunction = p.Function
	c.RoleType = p.RoleType
	c.PersonaScore = persona.Score(p)

	return t.store.CreateContact(ctx, c)
}
