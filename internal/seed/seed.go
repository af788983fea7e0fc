// Package seed loads the document written by a reset from TOML.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/panda-project/panda/internal/store"
)

//go:embed default.toml
var defaultSeed string

// Employee is an [[employees]] table.
type Employee struct {
	ID         int    `toml:"id"`
	FamilyName string `toml:"family_name"`
	FirstName  string `toml:"first_name"`
}

// Named is a [[products]] or [[projects]] table.
type Named struct {
	ID   int    `toml:"id"`
	Name string `toml:"name"`
}

// Team is a [[scrum_teams]] table.
type Team struct {
	ID int `toml:"id"`
}

// Member is a role row in [[product_owners]], [[scrum_masters]] or
// [[developers]].
type Member struct {
	ScrumTeamID int `toml:"scrum_team_id"`
	EmployeeID  int `toml:"employee_id"`
}

// File mirrors the document collections.
type File struct {
	Employees     []Employee `toml:"employees"`
	Products      []Named    `toml:"products"`
	Projects      []Named    `toml:"projects"`
	ScrumTeams    []Team     `toml:"scrum_teams"`
	ProductOwners []Member   `toml:"product_owners"`
	ScrumMasters  []Member   `toml:"scrum_masters"`
	Developers    []Member   `toml:"developers"`
}

// Default returns the built-in seed.
func Default() (*store.Document, error) {
	return Parse(defaultSeed)
}

// Load reads and validates a seed file.
func Load(path string) (*store.Document, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decoding seed %s: %w", path, err)
	}
	return build(f)
}

// Parse decodes and validates seed text.
func Parse(data string) (*store.Document, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	return build(f)
}

func build(f File) (*store.Document, error) {
	doc := store.NewDocument()
	for _, e := range f.Employees {
		doc.Employees = append(doc.Employees, store.EmployeeRecord(e))
	}
	for _, p := range f.Products {
		doc.Products = append(doc.Products, store.ProductRecord(p))
	}
	for _, p := range f.Projects {
		doc.Projects = append(doc.Projects, store.ProjectRecord(p))
	}
	for _, t := range f.ScrumTeams {
		doc.ScrumTeams = append(doc.ScrumTeams, store.ScrumTeamRecord(t))
	}
	for _, m := range f.ProductOwners {
		doc.ProductOwners = append(doc.ProductOwners, store.MemberRecord(m))
	}
	for _, m := range f.ScrumMasters {
		doc.ScrumMasters = append(doc.ScrumMasters, store.MemberRecord(m))
	}
	for _, m := range f.Developers {
		doc.Developers = append(doc.Developers, store.MemberRecord(m))
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
