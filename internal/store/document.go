// Package store holds the single JSON document that backs every repository.
package store

import "slices"

// EmployeeRecord is a row in the employees collection.
type EmployeeRecord struct {
	ID         int    `json:"id"`
	FamilyName string `json:"family_name"`
	FirstName  string `json:"first_name"`
}

// ProductRecord is a row in the products collection.
type ProductRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProjectRecord is a row in the projects collection.
type ProjectRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ScrumTeamRecord is a row in the scrumTeams collection.
type ScrumTeamRecord struct {
	ID int `json:"id"`
}

// MemberRecord is a join row keyed by (scrum_team_id, employee_id). It is the
// shape of the productOwners, scrumMasters and developers collections.
type MemberRecord struct {
	ScrumTeamID int `json:"scrum_team_id"`
	EmployeeID  int `json:"employee_id"`
}

// Document is the whole persisted state: independent flat collections.
type Document struct {
	Employees     []EmployeeRecord  `json:"employees"`
	Products      []ProductRecord   `json:"products"`
	Projects      []ProjectRecord   `json:"projects"`
	ScrumTeams    []ScrumTeamRecord `json:"scrumTeams"`
	ProductOwners []MemberRecord    `json:"productOwners"`
	ScrumMasters  []MemberRecord    `json:"scrumMasters"`
	Developers    []MemberRecord    `json:"developers"`
}

// NewDocument returns a document with every collection empty but non-nil, so
// it serializes as [] rather than null.
func NewDocument() *Document {
	d := &Document{}
	d.normalize()
	return d
}

// Clone returns a deep copy. Records are plain values, so copying each slice
// is enough.
func (d *Document) Clone() *Document {
	c := &Document{
		Employees:     slices.Clone(d.Employees),
		Products:      slices.Clone(d.Products),
		Projects:      slices.Clone(d.Projects),
		ScrumTeams:    slices.Clone(d.ScrumTeams),
		ProductOwners: slices.Clone(d.ProductOwners),
		ScrumMasters:  slices.Clone(d.ScrumMasters),
		Developers:    slices.Clone(d.Developers),
	}
	c.normalize()
	return c
}

func (d *Document) normalize() {
	if d.Employees == nil {
		d.Employees = []EmployeeRecord{}
	}
	if d.Products == nil {
		d.Products = []ProductRecord{}
	}
	if d.Projects == nil {
		d.Projects = []ProjectRecord{}
	}
	if d.ScrumTeams == nil {
		d.ScrumTeams = []ScrumTeamRecord{}
	}
	if d.ProductOwners == nil {
		d.ProductOwners = []MemberRecord{}
	}
	if d.ScrumMasters == nil {
		d.ScrumMasters = []MemberRecord{}
	}
	if d.Developers == nil {
		d.Developers = []MemberRecord{}
	}
}

// EmployeeIndex indexes the employees collection by primary id.
func (d *Document) EmployeeIndex() map[int]EmployeeRecord {
	idx := make(map[int]EmployeeRecord, len(d.Employees))
	for _, e := range d.Employees {
		idx[e.ID] = e
	}
	return idx
}

// MembersOf returns the rows of a join collection that belong to teamID.
func MembersOf(rows []MemberRecord, teamID int) []MemberRecord {
	var out []MemberRecord
	for _, r := range rows {
		if r.ScrumTeamID == teamID {
			out = append(out, r)
		}
	}
	return out
}

// DeleteMembersOf removes every row of a join collection for teamID.
func DeleteMembersOf(rows []MemberRecord, teamID int) []MemberRecord {
	return slices.DeleteFunc(rows, func(r MemberRecord) bool {
		return r.ScrumTeamID == teamID
	})
}

// NextID returns max(id)+1 over the given ids, starting at 1.
func NextID[T any](rows []T, id func(T) int) int {
	next := 1
	for _, r := range rows {
		if v := id(r); v >= next {
			next = v + 1
		}
	}
	return next
}
