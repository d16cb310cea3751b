package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"taskboard-api/internal/realtime"
	"taskboard-api/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler serves the task CRUD and dashboard endpoints.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a TaskHandler around the aggregation service.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// callerID returns the authenticated user's id set by the JWT middleware.
func callerID(c *gin.Context) (uint, bool) {
	id := c.GetUint("user_id")
	if id == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return 0, false
	}
	return id, true
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// notifyTask pushes a task event to a user's connected websocket clients.
func notifyTask(userID uint, event string, taskID uint) {
	evt := map[string]any{
		"type":    event,
		"taskId":  taskID,
		"userId":  userID,
		"version": 1,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		realtime.GetHub().Broadcast(userID, bytes)
	}
}

// CreateTask handles POST /api/tasks.
// The authenticated caller becomes the task's creator.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Create(req, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	if task.AssigneeID != nil {
		notifyTask(*task.AssigneeID, "task_created", task.ID)
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id.
// Only fields present in the body are changed.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Update(taskID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	if task.AssigneeID != nil {
		notifyTask(*task.AssigneeID, "task_updated", task.ID)
	}

	c.JSON(http.StatusOK, task)
}

// GetTaskByID handles GET /api/tasks/:id.
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id.
// Deleting an already-deleted id reports 404.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(taskID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTasksForUser handles GET /api/tasks?userId=N.
// Lists the tasks assigned to the given user.
func (h *TaskHandler) GetTasksForUser(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	raw := c.Query("userId")
	userID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId must be a positive integer"})
		return
	}

	tasks, svcErr := h.tasks.ListForUser(uint(userID))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// GetTasksGroupedForUser handles GET /api/tasks/grouped/user/:userId.
// Returns the four-bucket dashboard for one user.
func (h *TaskHandler) GetTasksGroupedForUser(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	board, err := h.tasks.GroupByStatusForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// GetTeamTasksGrouped handles GET /api/tasks/grouped/team/:teamId.
// The caller must be a member of the team.
func (h *TaskHandler) GetTeamTasksGrouped(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	board, err := h.tasks.GroupByStatusForTeam(teamID, caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// GetTeamTasksByUser handles GET /api/tasks/team/by-user/:userId.
// Aggregates the target user's team tasks in status order, wrapped in a
// data/status/timestamp envelope.
func (h *TaskHandler) GetTeamTasksByUser(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	body := gin.H{"timestamp": time.Now().UTC()}

	board, err := h.tasks.GetTeamTasksByCaller(userID)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			body["error"] = "Internal Server Error"
		} else {
			body["error"] = err.Error()
		}
		body["status"] = status
		c.JSON(status, body)
		return
	}

	body["data"] = board
	body["status"] = http.StatusOK
	c.JSON(http.StatusOK, body)
}
