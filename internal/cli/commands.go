package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/panda-project/panda/internal/app"
	"github.com/panda-project/panda/internal/command"
	"github.com/panda-project/panda/internal/query"
	"github.com/panda-project/panda/internal/usecase"
)

func (r *Runner) initialize(ctx context.Context, args []string) error {
	fs := r.flags("init")
	productName := fs.String("product-name", "", "product name (letters, digits, '_' or '-', at most 30)")
	projectName := fs.String("project-name", "", "project name (letters, digits, '_' or '-', at most 30)")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	cmd := command.Init[command.CLI]{ProductName: *productName, ProjectName: *projectName}
	if err := cmd.Validate(); err != nil {
		return err
	}
	result, err := r.app.Init.Exec(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "created product %s (id %d)\n", result.Product.Name, result.Product.ID.Int())
	fmt.Fprintf(r.stdout, "created project %s (id %d)\n", result.Project.Name, result.Project.ID.Int())
	return nil
}

func (r *Runner) employeeAdd(ctx context.Context, args []string) error {
	fs := r.flags("employee add")
	familyName := fs.String("family-name", "", "family name")
	firstName := fs.String("first-name", "", "first name")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	cmd := command.CreateEmployee[command.CLI]{FamilyName: *familyName, FirstName: *firstName}
	if err := cmd.Validate(); err != nil {
		return err
	}
	e, err := r.app.Employees.Create(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "added employee %d: %s\n", e.ID.Int(), e.Name.FullName())
	return nil
}

func (r *Runner) employeeEdit(ctx context.Context, args []string) error {
	fs := r.flags("employee edit")
	id := fs.String("id", "", "employee id")
	familyName := fs.String("family-name", "", "new family name")
	firstName := fs.String("first-name", "", "new first name")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	cmd := command.EditEmployee[command.CLI]{ID: *id, FamilyName: *familyName, FirstName: *firstName}
	if err := cmd.Validate(); err != nil {
		return err
	}
	e, err := r.app.Employees.Edit(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "renamed employee %d: %s\n", e.ID.Int(), e.Name.FullName())
	return nil
}

func (r *Runner) employeeRemove(ctx context.Context, args []string) error {
	fs := r.flags("employee remove")
	id := fs.String("id", "", "employee id")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	cmd := command.RemoveEmployee[command.CLI]{ID: *id}
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := r.app.Employees.Remove(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "removed employee %s\n", *id)
	return nil
}

func (r *Runner) employeeList(ctx context.Context, args []string) error {
	if err := r.parse(r.flags("employee list"), args); err != nil {
		return err
	}

	list, err := r.app.EmployeeQuery.Exec(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, e := range list.Employees {
		fmt.Fprintf(tw, "%d\t%s\n", e.ID, e.Name)
	}
	return tw.Flush()
}

// roleFlags registers the flags shared by team create and team edit.
func (r *Runner) roleFlags(name string, args []string) (command.Roles[command.CLI], error) {
	fs := r.flags(name)
	productOwner := fs.String("product-owner-id", "", "employee id of the product owner")
	scrumMaster := fs.String("scrum-master-id", "", "employee id of the scrum master")
	developers := fs.StringSlice("developer-ids", nil, "comma-separated employee ids of the developers (at most 10)")
	if err := r.parse(fs, args); err != nil {
		return command.Roles[command.CLI]{}, err
	}

	roles := command.Roles[command.CLI]{
		ProductOwner: *productOwner,
		ScrumMaster:  *scrumMaster,
		Developers:   *developers,
	}
	if err := roles.Validate(); err != nil {
		return command.Roles[command.CLI]{}, err
	}
	return roles, nil
}

func (r *Runner) teamCreate(ctx context.Context, args []string) error {
	roles, err := r.roleFlags("team create", args)
	if err != nil {
		return err
	}

	team, err := r.app.Teams.Create(ctx, command.CreateScrumTeam[command.CLI]{Roles: roles})
	if err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "created scrum team %d\n", team.ID.Int())
	return r.printTeam(query.NewScrumTeamDTO(team))
}

func (r *Runner) teamEdit(ctx context.Context, args []string) error {
	roles, err := r.roleFlags("team edit", args)
	if err != nil {
		return err
	}

	team, err := r.app.Teams.Edit(ctx, command.EditScrumTeam[command.CLI]{Roles: roles})
	if err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "edited scrum team %d\n", team.ID.Int())
	return r.printTeam(query.NewScrumTeamDTO(team))
}

func (r *Runner) teamDisband(ctx context.Context, args []string) error {
	fs := r.flags("team disband")
	id := fs.String("id", "", "scrum team id")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	cmd := command.DisbandScrumTeam[command.CLI]{ID: *id}
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := r.app.Teams.Disband(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "disbanded scrum team %s\n", *id)
	return nil
}

func (r *Runner) teamShow(ctx context.Context, args []string) error {
	if err := r.parse(r.flags("team show"), args); err != nil {
		return err
	}

	view, err := r.app.TeamQuery.Exec(ctx)
	if err != nil {
		return err
	}
	if view.ScrumTeam == nil {
		fmt.Fprintln(r.stdout, "no scrum team")
		return nil
	}
	return r.printTeam(view.ScrumTeam)
}

func (r *Runner) projectShow(ctx context.Context, args []string) error {
	if err := r.parse(r.flags("project show"), args); err != nil {
		return err
	}

	overview, err := r.app.ProjectQuery.Exec(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "product\t%s\n", namedOrDash(overview.Product))
	fmt.Fprintf(tw, "project\t%s\n", namedOrDash(overview.Project))
	if err := tw.Flush(); err != nil {
		return err
	}
	if overview.ScrumTeam == nil {
		fmt.Fprintln(r.stdout, "no scrum team")
		return nil
	}
	return r.printTeam(overview.ScrumTeam)
}

func (r *Runner) resetDB(ctx context.Context, args []string) error {
	fs := r.flags("reset-db")
	seedFile := fs.String("seed", "", "TOML seed file (default: SEED_FILE or the built-in seed)")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	scenario := r.app.Reset
	if *seedFile != "" {
		scenario = usecase.NewResetScenario(r.app.DB, app.SeedLoader(*seedFile))
	}
	if err := scenario.Exec(ctx); err != nil {
		return err
	}

	fmt.Fprintln(r.stdout, "document reset")
	return nil
}

func (r *Runner) check(ctx context.Context, args []string) error {
	if err := r.parse(r.flags("check"), args); err != nil {
		return err
	}

	findings, err := r.app.Integrity.Check(ctx)
	if err != nil {
		return err
	}
	if len(findings) == 0 {
		fmt.Fprintln(r.stdout, "ok")
		return nil
	}

	for _, f := range findings {
		fmt.Fprintln(r.stdout, f.String())
	}
	return fmt.Errorf("%d broken role assignments", len(findings))
}

func (r *Runner) printTeam(t *query.ScrumTeamDTO) error {
	tw := tabwriter.NewWriter(r.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ROLE\tID\tNAME\n")
	fmt.Fprintf(tw, "product owner\t%d\t%s%s\n", t.ProductOwner.EmployeeID, t.ProductOwner.Name, alsoDeveloper(t.ProductOwner))
	fmt.Fprintf(tw, "scrum master\t%d\t%s%s\n", t.ScrumMaster.EmployeeID, t.ScrumMaster.Name, alsoDeveloper(t.ScrumMaster))
	for _, d := range t.Developers {
		fmt.Fprintf(tw, "developer\t%d\t%s\n", d.EmployeeID, d.Name)
	}
	return tw.Flush()
}

func alsoDeveloper(l query.LeaderDTO) string {
	if l.IsDeveloper {
		return " (also developer)"
	}
	return ""
}

func namedOrDash(n *query.NamedDTO) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%s (id %d)", n.Name, n.ID)
}
