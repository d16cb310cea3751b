package service

import (
	"time"

	"taskboard-api/internal/models"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	Priority    string            `json:"priority"`
	DueDate     *time.Time        `json:"dueDate"`
	AssigneeID  *int64            `json:"assigneeId"`
}

// UpdateTaskRequest represents the request payload for updating a task.
// Nil fields leave the current value untouched; there is no way to clear
// a field through this request.
type UpdateTaskRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *models.TaskStatus `json:"status"`
	Priority    *string            `json:"priority"`
	DueDate     *time.Time         `json:"dueDate"`
	AssigneeID  *int64             `json:"assigneeId"`
}

// TaskResponse is the plain task view returned to clients.
type TaskResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	Priority    string            `json:"priority"`
	DueDate     *time.Time        `json:"dueDate"`
	AssigneeID  *uint             `json:"assigneeId"`
}

// TeamTaskResponse is the team-annotated task view: the plain view plus the
// assignee's username and the team context the query was made for.
type TeamTaskResponse struct {
	TaskResponse
	AssigneeUsername *string `json:"assigneeUsername"`
	TeamID           uint    `json:"teamId"`
	TeamName         string  `json:"teamName"`
}

// toTaskResponse maps an already-loaded task to its plain view. It never
// touches the store.
func toTaskResponse(t models.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		AssigneeID:  t.AssigneeID,
	}
}

// toTeamTaskResponse maps a task to its team-annotated view. The team is the
// one the query was scoped to, not derived from the assignee's memberships.
func toTeamTaskResponse(t models.Task, team models.Team) TeamTaskResponse {
	resp := TeamTaskResponse{
		TaskResponse: toTaskResponse(t),
		TeamID:       team.ID,
		TeamName:     team.Name,
	}
	if t.Assignee != nil {
		username := t.Assignee.Username
		resp.AssigneeUsername = &username
	}
	return resp
}
