package models

import (
	"time"
)

// TaskStatus represents the workflow status of a task
type TaskStatus string

const (
	StatusCreated    TaskStatus = "CREATED"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusValidating TaskStatus = "VALIDATING"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// DashboardKey returns the dashboard bucket label for a status.
// A task without a status is bucketed under "created".
func (s TaskStatus) DashboardKey() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusValidating:
		return "validating"
	case StatusCompleted:
		return "completed"
	default:
		return "created"
	}
}

// Order gives the total dashboard ordering of a status. Unknown statuses
// sort after all known ones.
func (s TaskStatus) Order() int {
	switch s {
	case StatusCreated:
		return 1
	case StatusInProgress:
		return 2
	case StatusValidating:
		return 3
	case StatusCompleted:
		return 4
	default:
		return 5
	}
}

// Task represents a task in the system
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status" gorm:"not null;default:'CREATED'"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate" gorm:"column:due_date"`
	AssigneeID  *uint      `json:"assigneeId" gorm:"column:assignee_id;index"`
	Assignee    *User      `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	CreatorID   uint       `json:"createdBy" gorm:"column:creator_id"`
	Creator     *User      `json:"-" gorm:"foreignKey:CreatorID"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
