package models

// User represents a user in the system
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"default:'MEMBER'"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
