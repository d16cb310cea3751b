package service

import (
	"errors"
	"fmt"
	"strings"

	"taskboard-api/internal/models"
	"taskboard-api/internal/store"
)

// TaskService implements task CRUD and the dashboard aggregations. The caller
// identity is always passed in explicitly; the service holds no request state.
type TaskService struct {
	tasks       store.TaskStore
	users       store.UserStore
	memberships store.MembershipStore
}

// NewTaskService wires the service to its stores.
func NewTaskService(tasks store.TaskStore, users store.UserStore, memberships store.MembershipStore) *TaskService {
	return &TaskService{
		tasks:       tasks,
		users:       users,
		memberships: memberships,
	}
}

// resolveAssignee validates and loads the requested assignee. A nil id means
// no assignment change. Validation happens before any store write.
func (s *TaskService) resolveAssignee(id *int64) (*models.User, error) {
	if id == nil {
		return nil, nil
	}
	if *id <= 0 {
		return nil, fmt.Errorf("%w: assignee id must be positive, got %d", ErrInvalidArgument, *id)
	}
	user, err := s.users.FindByID(uint(*id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: assigned user %d", ErrNotFound, *id)
		}
		return nil, err
	}
	return user, nil
}

// Create persists a new task. The caller becomes the creator; the caller id is
// a trusted reference and is not looked up. Status defaults to CREATED.
func (s *TaskService) Create(req CreateTaskRequest, callerID uint) (TaskResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return TaskResponse{}, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}

	assignee, err := s.resolveAssignee(req.AssigneeID)
	if err != nil {
		return TaskResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusCreated
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatorID:   callerID,
	}
	if assignee != nil {
		task.AssigneeID = &assignee.ID
	}

	if err := s.tasks.Save(&task); err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// Update applies a partial merge: only non-nil request fields overwrite the
// stored task. The creator is never changed.
func (s *TaskService) Update(taskID uint, req UpdateTaskRequest) (TaskResponse, error) {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TaskResponse{}, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return TaskResponse{}, err
	}

	assignee, err := s.resolveAssignee(req.AssigneeID)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if assignee != nil {
		task.AssigneeID = &assignee.ID
	}

	if err := s.tasks.Save(task); err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(*task), nil
}

// Delete removes a task by id. Deleting an absent id reports not-found, so a
// second delete of the same id fails rather than silently succeeding.
func (s *TaskService) Delete(taskID uint) error {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return err
	}
	return s.tasks.Delete(task)
}

// GetByID returns a single task.
func (s *TaskService) GetByID(taskID uint) (TaskResponse, error) {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TaskResponse{}, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return TaskResponse{}, err
	}
	return toTaskResponse(*task), nil
}

// ListForUser returns all tasks assigned to the user, in store order. Who
// created them is irrelevant to this filter.
func (s *TaskService) ListForUser(userID uint) ([]TaskResponse, error) {
	tasks, err := s.tasks.FindByAssigneeID(userID)
	if err != nil {
		return nil, err
	}
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, toTaskResponse(t))
	}
	return responses, nil
}

// GroupByStatusForUser buckets the user's assigned tasks by workflow status.
// All four buckets are present even when the user has no tasks; within a
// bucket tasks keep store order.
func (s *TaskService) GroupByStatusForUser(userID uint) (Board[TaskResponse], error) {
	tasks, err := s.tasks.FindByAssigneeIDs([]uint{userID})
	if err != nil {
		return Board[TaskResponse]{}, err
	}
	return groupByStatus(tasks, StoreOrder, toTaskResponse), nil
}

// GroupByStatusForTeam buckets the tasks of every member of the team,
// annotated with the team's id and name. The caller must be a member;
// non-members get not-found so the team's existence is not revealed.
func (s *TaskService) GroupByStatusForTeam(teamID, callerID uint) (Board[TeamTaskResponse], error) {
	if _, err := s.memberships.FindByUserIDAndTeamID(callerID, teamID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Board[TeamTaskResponse]{}, fmt.Errorf("%w: user %d is not in team %d", ErrNotFound, callerID, teamID)
		}
		return Board[TeamTaskResponse]{}, err
	}

	team, err := s.memberships.FindTeamByID(teamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Board[TeamTaskResponse]{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
		}
		return Board[TeamTaskResponse]{}, err
	}

	memberIDs, err := s.memberships.FindUserIDsByTeamID(teamID)
	if err != nil {
		return Board[TeamTaskResponse]{}, err
	}
	if len(memberIDs) == 0 {
		return NewBoard[TeamTaskResponse](), nil
	}

	tasks, err := s.tasks.FindByAssigneeIDs(memberIDs)
	if err != nil {
		return Board[TeamTaskResponse]{}, err
	}
	return groupByStatus(tasks, StoreOrder, func(t models.Task) TeamTaskResponse {
		return toTeamTaskResponse(t, *team)
	}), nil
}

// GetTeamTasksByCaller aggregates the tasks of the target user's team. When
// the user belongs to several teams the one with the lowest id is used; a
// user without any team is a bad request. Tasks are status-sorted before
// bucketing, so buckets come out in workflow order regardless of fetch order.
func (s *TaskService) GetTeamTasksByCaller(targetUserID uint) (Board[models.Task], error) {
	teamIDs, err := s.memberships.FindTeamIDsByUserID(targetUserID)
	if err != nil {
		return Board[models.Task]{}, err
	}
	if len(teamIDs) == 0 {
		return Board[models.Task]{}, fmt.Errorf("%w: user %d is not part of any team", ErrInvalidArgument, targetUserID)
	}
	teamID := teamIDs[0]

	memberIDs, err := s.memberships.FindUserIDsByTeamID(teamID)
	if err != nil {
		return Board[models.Task]{}, err
	}

	tasks, err := s.tasks.FindByAssigneeIDs(memberIDs)
	if err != nil {
		return Board[models.Task]{}, err
	}
	return groupByStatus(tasks, StatusOrder, func(t models.Task) models.Task {
		return t
	}), nil
}
