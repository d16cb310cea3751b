package store

import (
	"errors"

	"taskboard-api/internal/models"

	"gorm.io/gorm"
)

// gormTaskStore implements TaskStore on top of gorm.
type gormTaskStore struct {
	db *gorm.DB
}

// NewTaskStore creates a TaskStore backed by the given gorm connection.
func NewTaskStore(db *gorm.DB) TaskStore {
	return &gormTaskStore{db: db}
}

func (s *gormTaskStore) FindByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (s *gormTaskStore) Save(task *models.Task) error {
	return s.db.Save(task).Error
}

func (s *gormTaskStore) Delete(task *models.Task) error {
	return s.db.Delete(task).Error
}

func (s *gormTaskStore) FindByAssigneeID(userID uint) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.db.Where("assignee_id = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *gormTaskStore) FindByAssigneeIDs(userIDs []uint) ([]models.Task, error) {
	tasks := []models.Task{}
	if len(userIDs) == 0 {
		return tasks, nil
	}
	err := s.db.
		Preload("Assignee").
		Preload("Creator").
		Where("assignee_id IN ?", userIDs).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *gormTaskStore) ExistsByAssigneeAndTaskID(userID, taskID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Task{}).
		Where("id = ? AND assignee_id = ?", taskID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
