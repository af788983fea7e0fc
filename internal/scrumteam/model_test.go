package scrumteam_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/scrumteam"
)

func eid(t *testing.T, v int) employee.ID {
	t.Helper()
	id, err := employee.NewID(v)
	require.NoError(t, err)
	return id
}

func eids(t *testing.T, vs ...int) []employee.ID {
	t.Helper()
	ids := make([]employee.ID, 0, len(vs))
	for _, v := range vs {
		ids = append(ids, eid(t, v))
	}
	return ids
}

func seq(from, n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, from+i)
	}
	return out
}

func TestNew_DeveloperCountBoundary(t *testing.T) {
	for n := 0; n <= scrumteam.MaxDevelopers; n++ {
		team, err := scrumteam.New(eid(t, 100), eid(t, 101), eids(t, seq(1, n)...))
		require.NoError(t, err, "developers=%d", n)
		assert.Len(t, team.Developers, n)
		assert.True(t, team.ID.IsNull())
	}

	_, err := scrumteam.New(eid(t, 100), eid(t, 101), eids(t, seq(1, 11)...))
	assert.ErrorIs(t, err, domain.ErrInvalidTeamComposition)
}

func TestNew_InvalidComposition(t *testing.T) {
	tests := []struct {
		name         string
		productOwner employee.ID
		scrumMaster  employee.ID
		developers   []employee.ID
	}{
		{name: "missing product owner", productOwner: employee.NullID(), scrumMaster: eid(t, 2)},
		{name: "missing scrum master", productOwner: eid(t, 1), scrumMaster: employee.NullID()},
		{name: "same product owner and scrum master", productOwner: eid(t, 1), scrumMaster: eid(t, 1)},
		{name: "duplicate developer", productOwner: eid(t, 1), scrumMaster: eid(t, 2), developers: eids(t, 3, 3)},
		{name: "null developer", productOwner: eid(t, 1), scrumMaster: eid(t, 2), developers: []employee.ID{employee.NullID()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scrumteam.New(tt.productOwner, tt.scrumMaster, tt.developers)
			assert.ErrorIs(t, err, domain.ErrInvalidTeamComposition)
		})
	}
}

func TestNew_ProductOwnerMayBeDeveloper(t *testing.T) {
	team, err := scrumteam.New(eid(t, 3), eid(t, 4), eids(t, 1, 2, 3))
	require.NoError(t, err)

	assert.True(t, team.IsDeveloper(team.ProductOwner.EmployeeID))
	assert.False(t, team.IsDeveloper(team.ScrumMaster.EmployeeID))
	assert.Equal(t, eids(t, 3, 4, 1, 2, 3), team.EmployeeIDs())
}

func TestEdit_ReplacesWholeAssignment(t *testing.T) {
	team, err := scrumteam.New(eid(t, 1), eid(t, 2), eids(t, 3, 4))
	require.NoError(t, err)

	require.NoError(t, team.Edit(eid(t, 5), eid(t, 6), eids(t, 7)))
	assert.Equal(t, eid(t, 5), team.ProductOwner.EmployeeID)
	assert.Equal(t, eid(t, 6), team.ScrumMaster.EmployeeID)
	require.Len(t, team.Developers, 1)
	assert.Equal(t, eid(t, 7), team.Developers[0].EmployeeID)
}

func TestEdit_FailureLeavesTeamUnchanged(t *testing.T) {
	team, err := scrumteam.New(eid(t, 1), eid(t, 2), eids(t, 3))
	require.NoError(t, err)

	err = team.Edit(eid(t, 5), eid(t, 6), eids(t, seq(10, 11)...))
	assert.ErrorIs(t, err, domain.ErrInvalidTeamComposition)
	assert.Equal(t, eid(t, 1), team.ProductOwner.EmployeeID)
	assert.Len(t, team.Developers, 1)

	require.NoError(t, team.Edit(eid(t, 5), eid(t, 6), eids(t, seq(10, 10)...)))
	assert.Len(t, team.Developers, 10)
}

func TestDisband(t *testing.T) {
	unsaved, err := scrumteam.New(eid(t, 1), eid(t, 2), nil)
	require.NoError(t, err)
	assert.ErrorIs(t, unsaved.Disband(), domain.ErrNotFound)

	id, err := scrumteam.NewID(1)
	require.NoError(t, err)
	team := scrumteam.Ref(id)
	require.NoError(t, team.Disband())
	assert.True(t, team.IsDisbanded())
	assert.ErrorIs(t, team.Disband(), domain.ErrNotFound)
	assert.ErrorIs(t, team.Edit(eid(t, 1), eid(t, 2), nil), domain.ErrNotFound)
}

func TestParseID(t *testing.T) {
	id, err := scrumteam.ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, 12, id.Int())

	_, err = scrumteam.ParseID("x")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}
