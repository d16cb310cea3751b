package store

import (
	"errors"

	"taskboard-api/internal/models"

	"gorm.io/gorm"
)

// gormUserStore implements UserStore on top of gorm.
type gormUserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore backed by the given gorm connection.
func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) FindAll() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}
