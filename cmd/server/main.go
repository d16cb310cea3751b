package main

import (
	"log"
	"os"

	"taskboard-api/internal/database"
	"taskboard-api/internal/routes"
)

func main() {
	// Init database
	database.InitDB()
	database.SeedDemoData()

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8008"
	}
	log.Printf("Server starting on port :%s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/tasks?userId=N")
	log.Println("  GET    /api/tasks/:id")
	log.Println("  POST   /api/tasks")
	log.Println("  PUT    /api/tasks/:id")
	log.Println("  DELETE /api/tasks/:id")
	log.Println("  GET    /api/dashboard/user/:userId")
	log.Println("  GET    /api/dashboard/team/:teamId")
	log.Println("  GET    /api/dashboard/team-of-user/:userId")
	log.Println("  GET    /api/users")
	log.Println("  GET    /api/teams/:teamId/members")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
