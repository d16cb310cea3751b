package store

import (
	"testing"

	"taskboard-api/internal/models"
	"taskboard-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedMembershipFixtures(t *testing.T) (MembershipStore, *gorm.DB, []models.User, []models.Team) {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	users := []models.User{
		{Username: "alice", Password: "x"},
		{Username: "bob", Password: "x"},
		{Username: "carol", Password: "x"},
	}
	require.NoError(t, db.Create(&users).Error)

	teams := []models.Team{{Name: "platform"}, {Name: "support"}}
	require.NoError(t, db.Create(&teams).Error)

	memberships := []models.TeamMembership{
		{UserID: users[0].ID, TeamID: teams[0].ID},
		{UserID: users[1].ID, TeamID: teams[0].ID},
		{UserID: users[0].ID, TeamID: teams[1].ID},
	}
	require.NoError(t, db.Create(&memberships).Error)

	return NewMembershipStore(db), db, users, teams
}

func TestMembershipStore_FindTeamsByUserID_OrderedByTeamID(t *testing.T) {
	store, _, users, teams := seedMembershipFixtures(t)

	got, err := store.FindTeamsByUserID(users[0].ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, teams[0].ID, got[0].ID)
	require.Equal(t, teams[1].ID, got[1].ID)
}

func TestMembershipStore_FindTeamIDsByUserID(t *testing.T) {
	store, _, users, teams := seedMembershipFixtures(t)

	ids, err := store.FindTeamIDsByUserID(users[0].ID)
	require.NoError(t, err)
	require.Equal(t, []uint{teams[0].ID, teams[1].ID}, ids)

	ids, err = store.FindTeamIDsByUserID(users[2].ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestMembershipStore_FindUserIDsByTeamID(t *testing.T) {
	store, _, users, teams := seedMembershipFixtures(t)

	ids, err := store.FindUserIDsByTeamID(teams[0].ID)
	require.NoError(t, err)
	require.Equal(t, []uint{users[0].ID, users[1].ID}, ids)
}

func TestMembershipStore_FindByUserIDAndTeamID(t *testing.T) {
	store, _, users, teams := seedMembershipFixtures(t)

	membership, err := store.FindByUserIDAndTeamID(users[1].ID, teams[0].ID)
	require.NoError(t, err)
	require.Equal(t, users[1].ID, membership.UserID)

	// bob is not in the support team
	_, err = store.FindByUserIDAndTeamID(users[1].ID, teams[1].ID)
	require.ErrorIs(t, err, ErrMembershipNotFound)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMembershipStore_FindTeamByID_NotFound(t *testing.T) {
	store, _, _, _ := seedMembershipFixtures(t)

	_, err := store.FindTeamByID(999)
	require.ErrorIs(t, err, ErrTeamNotFound)
}
