package models

// Team represents a team of users
type Team struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

// TableName specifies the table name for Team Model
func (Team) TableName() string {
	return "teams"
}

// TeamMembership links a user to a team. The pair is the identity;
// a user appears at most once per team.
type TeamMembership struct {
	UserID uint `json:"userId" gorm:"primaryKey;column:user_id"`
	TeamID uint `json:"teamId" gorm:"primaryKey;column:team_id"`
}

// TableName specifies the table name for TeamMembership Model
func (TeamMembership) TableName() string {
	return "user_teams"
}
