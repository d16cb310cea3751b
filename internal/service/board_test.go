package service

import (
	"encoding/json"
	"testing"

	"taskboard-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestBoard_SerializesAllFourBuckets(t *testing.T) {
	board := NewBoard[TaskResponse]()

	raw, err := json.Marshal(board)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"created", "in-progress", "validating", "completed"} {
		require.Contains(t, decoded, key)
		require.Equal(t, "[]", string(decoded[key]))
	}
}

func TestGroupByStatus_NoMembersNoTasks(t *testing.T) {
	board := groupByStatus(nil, StoreOrder, func(task models.Task) models.Task { return task })
	require.Empty(t, board.Created)
	require.Empty(t, board.InProgress)
	require.Empty(t, board.Validating)
	require.Empty(t, board.Completed)
	require.NotNil(t, board.Created)
}

func TestGroupByStatus_MissingStatusFallsBackToCreated(t *testing.T) {
	tasks := []models.Task{{ID: 1, Title: "untracked"}}
	board := groupByStatus(tasks, StoreOrder, func(task models.Task) models.Task { return task })
	require.Len(t, board.Created, 1)
}

func TestGroupByStatus_StatusOrderDoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.StatusCompleted},
		{ID: 2, Status: models.StatusCreated},
	}
	_ = groupByStatus(tasks, StatusOrder, func(task models.Task) models.Task { return task })
	require.Equal(t, uint(1), tasks[0].ID)
	require.Equal(t, uint(2), tasks[1].ID)
}
