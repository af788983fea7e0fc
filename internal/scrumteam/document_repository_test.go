package scrumteam_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/scrumteam"
	"github.com/panda-project/panda/internal/store"
)

// setupTeamRepo returns a repository over a document seeded with employees
// 1..n.
func setupTeamRepo(t *testing.T, n int) (*scrumteam.DocumentRepository, *store.DB) {
	t.Helper()
	ctx := context.Background()

	backend := store.NewMemoryBackend()
	doc := store.NewDocument()
	for i := 1; i <= n; i++ {
		doc.Employees = append(doc.Employees, store.EmployeeRecord{ID: i, FamilyName: "Family", FirstName: "No" + string(rune('A'+i-1))})
	}
	require.NoError(t, backend.Save(ctx, doc))

	db, err := store.Open(ctx, backend)
	require.NoError(t, err)
	return scrumteam.NewRepository(db), db
}

func membersOf(rows []store.MemberRecord, teamID int) []int {
	var ids []int
	for _, r := range store.MembersOf(rows, teamID) {
		ids = append(ids, r.EmployeeID)
	}
	return ids
}

func TestSave_NewTeamWritesFourCollections(t *testing.T) {
	repo, db := setupTeamRepo(t, 12)
	ctx := context.Background()

	team, err := scrumteam.New(eid(t, 1), eid(t, 2), eids(t, 3, 4))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, team))
	assert.Equal(t, 1, team.ID.Int())

	data := db.Data()
	assert.Equal(t, []store.ScrumTeamRecord{{ID: 1}}, data.ScrumTeams)
	assert.Equal(t, []int{1}, membersOf(data.ProductOwners, 1))
	assert.Equal(t, []int{2}, membersOf(data.ScrumMasters, 1))
	assert.Equal(t, []int{3, 4}, membersOf(data.Developers, 1))

	assert.Equal(t, "Family NoA", team.ProductOwner.Name.FullName())
	assert.Equal(t, "Family NoD", team.Developers[1].Name.FullName())
}

func TestSave_RoundTripEveryDeveloperCount(t *testing.T) {
	ctx := context.Background()
	for n := 0; n <= scrumteam.MaxDevelopers; n++ {
		repo, db := setupTeamRepo(t, 12)

		team, err := scrumteam.New(eid(t, 11), eid(t, 12), eids(t, seq(1, n)...))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, team))

		teams, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Equal(t, team.ProductOwner, teams[0].ProductOwner)
		assert.Equal(t, team.ScrumMaster, teams[0].ScrumMaster)
		assert.Equal(t, team.Developers, teams[0].Developers)

		data := db.Data()
		assert.Len(t, store.MembersOf(data.ProductOwners, team.ID.Int()), 1)
		assert.Len(t, store.MembersOf(data.ScrumMasters, team.ID.Int()), 1)
		assert.Len(t, store.MembersOf(data.Developers, team.ID.Int()), n)
	}
}

func TestSave_TwiceLeavesNoStaleRows(t *testing.T) {
	repo, db := setupTeamRepo(t, 8)
	ctx := context.Background()

	team, err := scrumteam.New(eid(t, 1), eid(t, 2), eids(t, 3, 4, 5))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, team))

	require.NoError(t, team.Edit(eid(t, 6), eid(t, 7), eids(t, 8)))
	require.NoError(t, repo.Save(ctx, team))

	data := db.Data()
	assert.Len(t, data.ScrumTeams, 1)
	assert.Equal(t, []int{6}, membersOf(data.ProductOwners, 1))
	assert.Equal(t, []int{7}, membersOf(data.ScrumMasters, 1))
	assert.Equal(t, []int{8}, membersOf(data.Developers, 1))
	assert.Len(t, data.Developers, 1)
}

func TestSave_UnknownEmployeeWritesNothing(t *testing.T) {
	repo, db := setupTeamRepo(t, 3)
	ctx := context.Background()

	team, err := scrumteam.New(eid(t, 1), eid(t, 2), eids(t, 3, 99))
	require.NoError(t, err)

	err = repo.Save(ctx, team)
	assert.ErrorIs(t, err, domain.ErrDanglingReference)
	assert.True(t, team.ID.IsNull())

	data := db.Data()
	assert.Empty(t, data.ScrumTeams)
	assert.Empty(t, data.ProductOwners)
	assert.Empty(t, data.ScrumMasters)
	assert.Empty(t, data.Developers)
}

func TestSave_ExplicitIDIsUpserted(t *testing.T) {
	repo, db := setupTeamRepo(t, 3)

	id, err := scrumteam.NewID(100)
	require.NoError(t, err)
	team, err := scrumteam.New(eid(t, 1), eid(t, 2), eids(t, 3))
	require.NoError(t, err)
	team.ID = id

	require.NoError(t, repo.Save(context.Background(), team))
	assert.Equal(t, []store.ScrumTeamRecord{{ID: 100}}, db.Data().ScrumTeams)
}

func TestSave_DisbandedTeamIsRejected(t *testing.T) {
	repo, _ := setupTeamRepo(t, 3)

	id, _ := scrumteam.NewID(1)
	team := scrumteam.Ref(id)
	require.NoError(t, team.Disband())

	err := repo.Save(context.Background(), team)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemove_OnlyTouchesTargetTeam(t *testing.T) {
	repo, db := setupTeamRepo(t, 8)
	ctx := context.Background()

	first, err := scrumteam.New(eid(t, 1), eid(t, 2), eids(t, 3, 4))
	require.NoError(t, err)
	second, err := scrumteam.New(eid(t, 5), eid(t, 6), eids(t, 7, 8, 1))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	require.NoError(t, repo.Remove(ctx, first.ID))

	data := db.Data()
	assert.Equal(t, []store.ScrumTeamRecord{{ID: second.ID.Int()}}, data.ScrumTeams)
	assert.Empty(t, membersOf(data.ProductOwners, first.ID.Int()))
	assert.Empty(t, membersOf(data.ScrumMasters, first.ID.Int()))
	assert.Empty(t, membersOf(data.Developers, first.ID.Int()))
	assert.Equal(t, []int{5}, membersOf(data.ProductOwners, second.ID.Int()))
	assert.Equal(t, []int{6}, membersOf(data.ScrumMasters, second.ID.Int()))
	assert.Equal(t, []int{7, 8, 1}, membersOf(data.Developers, second.ID.Int()))

	err = repo.Remove(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindByID(t *testing.T) {
	repo, _ := setupTeamRepo(t, 4)
	ctx := context.Background()

	team, err := scrumteam.New(eid(t, 3), eid(t, 4), eids(t, 1, 2, 3))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, team))

	found, err := repo.FindByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, found.Developers, 3)
	assert.True(t, found.IsDeveloper(found.ProductOwner.EmployeeID))
	assert.False(t, found.IsDeveloper(found.ScrumMaster.EmployeeID))

	missing, _ := scrumteam.NewID(42)
	_, err = repo.FindByID(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindAll_DanglingEmployeeFailsRead(t *testing.T) {
	repo, db := setupTeamRepo(t, 4)
	ctx := context.Background()

	team, err := scrumteam.New(eid(t, 3), eid(t, 4), eids(t, 1, 2))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, team))

	require.NoError(t, employee.NewRepository(db).Remove(ctx, eid(t, 2)))

	_, err = repo.FindAll(ctx)
	assert.ErrorIs(t, err, domain.ErrDanglingReference)
	_, err = repo.FindByID(ctx, team.ID)
	assert.ErrorIs(t, err, domain.ErrDanglingReference)

	// The team can still be disbanded.
	require.NoError(t, repo.Remove(ctx, team.ID))
	teams, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestFindAll_MissingRoleRowIsReported(t *testing.T) {
	repo, db := setupTeamRepo(t, 2)
	ctx := context.Background()

	require.NoError(t, db.Update(ctx, func(doc *store.Document) error {
		doc.ScrumTeams = append(doc.ScrumTeams, store.ScrumTeamRecord{ID: 1})
		doc.ProductOwners = append(doc.ProductOwners, store.MemberRecord{ScrumTeamID: 1, EmployeeID: 1})
		return nil
	}))

	_, err := repo.FindAll(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidTeamComposition)
}

func TestExistsWithoutID(t *testing.T) {
	repo, _ := setupTeamRepo(t, 2)
	ctx := context.Background()

	exists, err := repo.ExistsWithoutID(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	team, err := scrumteam.New(eid(t, 1), eid(t, 2), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, team))

	exists, err = repo.ExistsWithoutID(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFindIDs_IgnoresDanglingReferences(t *testing.T) {
	repo, db := setupTeamRepo(t, 3)
	ctx := context.Background()

	team, err := scrumteam.New(eid(t, 1), eid(t, 2), eids(t, 3))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, team))
	require.NoError(t, employee.NewRepository(db).Remove(ctx, eid(t, 3)))

	ids, err := repo.FindIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []scrumteam.ID{team.ID}, ids)
}
