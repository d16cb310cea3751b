package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskStatus_DashboardKey(t *testing.T) {
	require.Equal(t, "created", StatusCreated.DashboardKey())
	require.Equal(t, "in-progress", StatusInProgress.DashboardKey())
	require.Equal(t, "validating", StatusValidating.DashboardKey())
	require.Equal(t, "completed", StatusCompleted.DashboardKey())

	// Missing status counts as created
	require.Equal(t, "created", TaskStatus("").DashboardKey())
}

func TestTaskStatus_Order(t *testing.T) {
	require.Less(t, StatusCreated.Order(), StatusInProgress.Order())
	require.Less(t, StatusInProgress.Order(), StatusValidating.Order())
	require.Less(t, StatusValidating.Order(), StatusCompleted.Order())
	require.Equal(t, 5, TaskStatus("ARCHIVED").Order())
}
