package store

import (
	"testing"

	"taskboard-api/internal/models"
	"taskboard-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTaskStoreDB(t *testing.T) (TaskStore, *gorm.DB) {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	return NewTaskStore(db), db
}

func TestTaskStore_FindByID_NotFound(t *testing.T) {
	store, _ := newTaskStoreDB(t)

	_, err := store.FindByID(42)
	require.ErrorIs(t, err, ErrTaskNotFound)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTaskStore_SaveAssignsID(t *testing.T) {
	store, _ := newTaskStoreDB(t)

	task := models.Task{Title: "t", Status: models.StatusCreated, CreatorID: 1}
	require.NoError(t, store.Save(&task))
	require.NotZero(t, task.ID)

	got, err := store.FindByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, "t", got.Title)
}

func TestTaskStore_FindByAssigneeIDs_ResolvesRelations(t *testing.T) {
	store, db := newTaskStoreDB(t)

	creator := models.User{Username: "alice", Password: "x"}
	assignee := models.User{Username: "bob", Password: "x"}
	require.NoError(t, db.Create(&creator).Error)
	require.NoError(t, db.Create(&assignee).Error)

	task := models.Task{Title: "t", Status: models.StatusCreated, AssigneeID: &assignee.ID, CreatorID: creator.ID}
	require.NoError(t, store.Save(&task))

	tasks, err := store.FindByAssigneeIDs([]uint{assignee.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Assignee)
	require.Equal(t, "bob", tasks[0].Assignee.Username)
	require.NotNil(t, tasks[0].Creator)
	require.Equal(t, "alice", tasks[0].Creator.Username)
}

func TestTaskStore_FindByAssigneeIDs_EmptyInput(t *testing.T) {
	store, _ := newTaskStoreDB(t)

	tasks, err := store.FindByAssigneeIDs(nil)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskStore_ExistsByAssigneeAndTaskID(t *testing.T) {
	store, db := newTaskStoreDB(t)

	assignee := models.User{Username: "bob", Password: "x"}
	require.NoError(t, db.Create(&assignee).Error)
	task := models.Task{Title: "t", Status: models.StatusCreated, AssigneeID: &assignee.ID, CreatorID: 1}
	require.NoError(t, store.Save(&task))

	ok, err := store.ExistsByAssigneeAndTaskID(assignee.ID, task.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.ExistsByAssigneeAndTaskID(assignee.ID+1, task.ID)
	require.NoError(t, err)
	require.False(t, ok)
}
