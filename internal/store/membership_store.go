package store

import (
	"errors"

	"taskboard-api/internal/models"

	"gorm.io/gorm"
)

// gormMembershipStore implements MembershipStore on top of gorm.
type gormMembershipStore struct {
	db *gorm.DB
}

// NewMembershipStore creates a MembershipStore backed by the given gorm connection.
func NewMembershipStore(db *gorm.DB) MembershipStore {
	return &gormMembershipStore{db: db}
}

func (s *gormMembershipStore) FindTeamByID(teamID uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (s *gormMembershipStore) FindTeamsByUserID(userID uint) ([]models.Team, error) {
	teams := []models.Team{}
	err := s.db.
		Joins("JOIN user_teams ON user_teams.team_id = teams.id").
		Where("user_teams.user_id = ?", userID).
		Order("teams.id").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *gormMembershipStore) FindByTeamID(teamID uint) ([]models.TeamMembership, error) {
	memberships := []models.TeamMembership{}
	if err := s.db.Where("team_id = ?", teamID).Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

func (s *gormMembershipStore) FindByUserIDAndTeamID(userID, teamID uint) (*models.TeamMembership, error) {
	var membership models.TeamMembership
	err := s.db.
		Where("user_id = ? AND team_id = ?", userID, teamID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

func (s *gormMembershipStore) FindTeamIDsByUserID(userID uint) ([]uint, error) {
	ids := []uint{}
	err := s.db.Model(&models.TeamMembership{}).
		Where("user_id = ?", userID).
		Order("team_id").
		Pluck("team_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *gormMembershipStore) FindUserIDsByTeamID(teamID uint) ([]uint, error) {
	ids := []uint{}
	err := s.db.Model(&models.TeamMembership{}).
		Where("team_id = ?", teamID).
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
