package database

import (
	"log"

	"taskboard-api/internal/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection and runs migrations
func InitDB() {
	var err error

	// Open SQLite database file (will be created if it doesn't exist initially)
	// Using glebarez/sqlite which is a pure Go implementation (no CGO required)
	DB, err = gorm.Open(sqlite.Open("taskboard.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate the schema (it will create tables if they don't exist)
	err = DB.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMembership{},
		&models.Task{},
	)

	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// SeedDemoData inserts demo users, a team, and memberships when the users
// table is empty. Membership management has no API surface, so without seed
// data the team dashboards would be unreachable on a fresh database.
func SeedDemoData() {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to inspect users table: ", err)
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}

	users := []models.User{
		{Username: "alice", Password: string(hash), Role: "ADMIN"},
		{Username: "bob", Password: string(hash), Role: "MEMBER"},
		{Username: "carol", Password: string(hash), Role: "MEMBER"},
	}
	if err := DB.Create(&users).Error; err != nil {
		log.Fatal("Failed to seed users: ", err)
	}

	team := models.Team{Name: "platform"}
	if err := DB.Create(&team).Error; err != nil {
		log.Fatal("Failed to seed team: ", err)
	}

	memberships := []models.TeamMembership{
		{UserID: users[0].ID, TeamID: team.ID},
		{UserID: users[1].ID, TeamID: team.ID},
	}
	if err := DB.Create(&memberships).Error; err != nil {
		log.Fatal("Failed to seed memberships: ", err)
	}

	log.Println("Seeded demo users (alice/bob/carol, password \"password\") and team \"platform\"")
}
