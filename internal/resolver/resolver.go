// Package resolver matches harvested network connections to tracked target
// companies and keeps stored match flags consistent with the current
// company set.
package resolver

import (
	"context"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/pipeline-cli/internal/company"
	"github.com/sells-group/pipeline-cli/internal/model"
	"github.com/sells-group/pipeline-cli/internal/store"
)

// Resolver resolves connection-to-company matches against a directory
// snapshot built from the full company set.
type Resolver struct {
	store store.Store

	// Concurrency bound for per-record writes during a rematch pass.
	// Per-record updates depend only on the record's own fields plus the
	// directory snapshot, so they can run in parallel; the snapshot read
	// must happen before any dependent write.
	Concurrency int
}

// New creates a Resolver.
func New(s store.Store) *Resolver {
	return &Resolver{store: s, Concurrency: 8}
}

// Match is the outcome of resolving one connection.
type Match struct {
	IsICPMatch bool
	Company    *model.Company
}

// Resolve determines whether a connection belongs to a tracked company.
// When the connection carries no explicit company string, one is derived
// from trailing separators in the title; an empty result simply fails to
// match and is not an error.
func Resolve(conn *model.Connection, dir *company.Directory) Match {
	name := conn.Company
	if name == "" {
		name = company.ExtractFromTitle(conn.Title)
	}
	if name == "" {
		return Match{}
	}
	if c := dir.Lookup(name); c != nil {
		return Match{IsICPMatch: true, Company: c}
	}
	return Match{}
}

// IngestConnection upserts a harvested connection keyed by
// (profile URL, team member). An existing record under the same key has
// its mutable fields overwritten and its extraction timestamp refreshed;
// the same profile URL under a different team member is a separate record.
// The owning team member must exist.
func (r *Resolver) IngestConnection(ctx context.Context, conn *model.Connection, dir *company.Directory) (created bool, err error) {
	if conn.ProfileURL == "" {
		return false, eris.New("resolver: connection profile URL is required")
	}

	member, err := r.store.GetTeamMember(ctx, conn.TeamMemberID)
	if err != nil {
		return false, eris.Wrap(err, "resolver: lookup team member")
	}
	if member == nil {
		return false, eris.Errorf("resolver: missing reference: team member %s", conn.TeamMemberID)
	}

	m := Resolve(conn, dir)
	conn.IsICPMatch = m.IsICPMatch
	conn.CompanyID = ""
	if m.Company != nil {
		conn.CompanyID = m.Company.ID
	}
	conn.ExtractedAt = time.Now().UTC()

	existing, err := r.store.GetConnectionByKey(ctx, conn.ProfileURL, conn.TeamMemberID)
	if err != nil {
		return false, eris.Wrap(err, "resolver: lookup connection")
	}
	if existing != nil {
		conn.ID = existing.ID
		if err := r.store.UpdateConnection(ctx, conn); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := r.store.CreateConnection(ctx, conn); err != nil {
		return false, err
	}
	return true, nil
}

// RematchResult summarizes a resolution pass.
type RematchResult struct {
	Total     int `json:"total"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
	Changed   int `json:"changed"`
}

// RematchAll rebuilds the company directory and re-resolves every stored
// connection, persisting only outcomes that differ from the stored value.
// Previously matched connections un-match when their company left the
// directory, and vice versa. Not safe to run concurrently with itself or
// with bulk connection imports.
func (r *Resolver) RematchAll(ctx context.Context) (*RematchResult, error) {
	companies, err := r.store.ListCompanies(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "resolver: list companies")
	}
	dir := company.BuildDirectory(companies)

	conns, err := r.store.ListConnections(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "resolver: list connections")
	}

	result := &RematchResult{Total: len(conns)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Concurrency)

	for i := range conns {
		conn := conns[i]
		g.Go(func() error {
			m := Resolve(&conn, dir)
			companyID := ""
			if m.Company != nil {
				companyID = m.Company.ID
			}

			changed := m.IsICPMatch != conn.IsICPMatch || companyID != conn.CompanyID
			if changed {
				if err := r.store.UpdateConnectionMatch(gctx, conn.ID, m.IsICPMatch, companyID); err != nil {
					return err
				}
				zap.L().Debug("rematch: connection flipped",
					zap.String("profile_url", conn.ProfileURL),
					zap.Bool("is_icp_match", m.IsICPMatch),
				)
			}

			mu.Lock()
			if m.IsICPMatch {
				result.Matched++
			} else {
				result.Unmatched++
			}
			if changed {
				result.Changed++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "resolver: rematch pass")
	}

	if err := r.recomputeCounters(ctx); err != nil {
		return nil, err
	}

	zap.L().Info("rematch complete",
		zap.Int("total", result.Total),
		zap.Int("matched", result.Matched),
		zap.Int("unmatched", result.Unmatched),
		zap.Int("changed", result.Changed),
	)
	return result, nil
}

// recomputeCounters re-derives each team member's connection counters from
// the connection collection. Counters are only ever written here, at the
// end of a pass, never incremented from individual call sites.
func (r *Resolver) recomputeCounters(ctx context.Context) error {
	conns, err := r.store.ListConnections(ctx)
	if err != nil {
		return eris.Wrap(err, "resolver: list connections for counters")
	}

	type counts struct{ total, icp int }
	byMember := make(map[string]counts)
	for _, c := range conns {
		n := byMember[c.TeamMemberID]
		n.total++
		if c.IsICPMatch {
			n.icp++
		}
		byMember[c.TeamMemberID] = n
	}

	members, err := r.store.ListTeamMembers(ctx)
	if err != nil {
		return eris.Wrap(err, "resolver: list team members")
	}
	for _, m := range members {
		n := byMember[m.ID]
		if n.total == m.ConnectionCount && n.icp == m.ICPConnectionCount {
			continue
		}
		if err := r.store.UpdateTeamMemberCounts(ctx, m.ID, n.total, n.icp); err != nil {
			return err
		}
	}
	return nil
}
