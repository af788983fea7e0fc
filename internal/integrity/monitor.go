// Package integrity sweeps the document for role assignments that no longer
// resolve. The store has no foreign keys, so removing an employee can leave
// join rows behind; the monitor only reports them.
package integrity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/panda-project/panda/internal/store"
)

// Problem kinds reported in a Finding.
const (
	MissingEmployee     = "missing_employee"
	MissingScrumTeam    = "missing_scrum_team"
	MissingProductOwner = "missing_product_owner"
	MissingScrumMaster  = "missing_scrum_master"
)

// Reader is the part of store.DB the monitor needs.
type Reader interface {
	View(ctx context.Context, fn func(doc *store.Document) error) error
}

// Finding is one broken reference. Collection is the join collection the
// row lives in, or scrumTeams for a team missing a leader row.
type Finding struct {
	Collection  string `json:"collection"`
	ScrumTeamID int    `json:"scrumTeamId"`
	EmployeeID  int    `json:"employeeId,omitempty"`
	Problem     string `json:"problem"`
}

func (f Finding) String() string {
	if f.EmployeeID == 0 {
		return fmt.Sprintf("%s: scrum team %d: %s", f.Collection, f.ScrumTeamID, f.Problem)
	}
	return fmt.Sprintf("%s: scrum team %d, employee %d: %s", f.Collection, f.ScrumTeamID, f.EmployeeID, f.Problem)
}

// Monitor checks referential integrity on demand or on a fixed interval.
type Monitor struct {
	db       Reader
	interval time.Duration
}

// New creates a new Monitor.
func New(db Reader, interval time.Duration) *Monitor {
	return &Monitor{db: db, interval: interval}
}

// Start runs a sweep every interval. It blocks until ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	slog.Info("integrity monitor started", "interval", m.interval.String())
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("integrity monitor stopped")
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *Monitor) sweep(ctx context.Context) {
	findings, err := m.Check(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("integrity: failed to read document", "error", err)
		}
		return
	}
	for _, f := range findings {
		slog.Warn("integrity: broken role assignment",
			"collection", f.Collection,
			"scrumTeamId", f.ScrumTeamID,
			"employeeId", f.EmployeeID,
			"problem", f.Problem,
		)
	}
}

// Check reads the latest document and returns every broken reference.
func (m *Monitor) Check(ctx context.Context) ([]Finding, error) {
	var findings []Finding
	err := m.db.View(ctx, func(doc *store.Document) error {
		findings = Inspect(doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("checking integrity: %w", err)
	}
	return findings, nil
}

// Inspect returns the broken references of doc in collection order.
func Inspect(doc *store.Document) []Finding {
	employees := doc.EmployeeIndex()
	teams := make(map[int]struct{}, len(doc.ScrumTeams))
	for _, t := range doc.ScrumTeams {
		teams[t.ID] = struct{}{}
	}

	findings := []Finding{}
	roles := []struct {
		name string
		rows []store.MemberRecord
	}{
		{"productOwners", doc.ProductOwners},
		{"scrumMasters", doc.ScrumMasters},
		{"developers", doc.Developers},
	}
	for _, role := range roles {
		for _, r := range role.rows {
			if _, ok := teams[r.ScrumTeamID]; !ok {
				findings = append(findings, Finding{Collection: role.name, ScrumTeamID: r.ScrumTeamID, EmployeeID: r.EmployeeID, Problem: MissingScrumTeam})
			}
			if _, ok := employees[r.EmployeeID]; !ok {
				findings = append(findings, Finding{Collection: role.name, ScrumTeamID: r.ScrumTeamID, EmployeeID: r.EmployeeID, Problem: MissingEmployee})
			}
		}
	}

	for _, t := range doc.ScrumTeams {
		if len(store.MembersOf(doc.ProductOwners, t.ID)) == 0 {
			findings = append(findings, Finding{Collection: "scrumTeams", ScrumTeamID: t.ID, Problem: MissingProductOwner})
		}
		if len(store.MembersOf(doc.ScrumMasters, t.ID)) == 0 {
			findings = append(findings, Finding{Collection: "scrumTeams", ScrumTeamID: t.ID, Problem: MissingScrumMaster})
		}
	}
	return findings
}
