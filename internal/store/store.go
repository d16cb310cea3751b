package store

import (
	"taskboard-api/internal/models"
)

// TaskStore provides CRUD and lookup access to task records.
type TaskStore interface {
	// FindByID returns the task with the given id or ErrTaskNotFound.
	FindByID(id uint) (*models.Task, error)

	// Save inserts the task when its id is zero, otherwise updates it.
	Save(task *models.Task) error

	// Delete removes the task.
	Delete(task *models.Task) error

	// FindByAssigneeID returns all tasks assigned to the user, in store order.
	FindByAssigneeID(userID uint) ([]models.Task, error)

	// FindByAssigneeIDs returns all tasks assigned to any of the users,
	// with Assignee and Creator resolved.
	FindByAssigneeIDs(userIDs []uint) ([]models.Task, error)

	// ExistsByAssigneeAndTaskID reports whether the task exists and is
	// assigned to the user.
	ExistsByAssigneeAndTaskID(userID, taskID uint) (bool, error)
}

// MembershipStore provides read access to team membership relations.
// Membership records are created and removed by flows outside this API.
type MembershipStore interface {
	// FindTeamByID returns the team with the given id or ErrTeamNotFound.
	FindTeamByID(teamID uint) (*models.Team, error)

	// FindTeamsByUserID returns the teams the user belongs to, ordered by team id.
	FindTeamsByUserID(userID uint) ([]models.Team, error)

	// FindByTeamID returns all memberships of a team.
	FindByTeamID(teamID uint) ([]models.TeamMembership, error)

	// FindByUserIDAndTeamID returns the membership for the pair or
	// ErrMembershipNotFound.
	FindByUserIDAndTeamID(userID, teamID uint) (*models.TeamMembership, error)

	// FindTeamIDsByUserID returns the ids of the teams the user belongs to,
	// ascending.
	FindTeamIDsByUserID(userID uint) ([]uint, error)

	// FindUserIDsByTeamID returns the ids of the members of a team, ascending.
	FindUserIDsByTeamID(teamID uint) ([]uint, error)
}

// UserStore provides access to user records.
type UserStore interface {
	// FindByID returns the user with the given id or ErrUserNotFound.
	FindByID(id uint) (*models.User, error)

	// FindByUsername returns the user with the given username or ErrUserNotFound.
	FindByUsername(username string) (*models.User, error)

	// FindAll returns all users.
	FindAll() ([]models.User, error)

	// Create inserts a new user.
	Create(user *models.User) error
}
