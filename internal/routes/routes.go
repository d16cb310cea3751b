package routes

import (
	"taskboard-api/internal/database"
	"taskboard-api/internal/handlers"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/service"
	"taskboard-api/internal/store"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Taskboard API is running",
		})
	})

	// Wire stores, service, and handlers
	db := database.GetDB()
	taskStore := store.NewTaskStore(db)
	userStore := store.NewUserStore(db)
	membershipStore := store.NewMembershipStore(db)
	taskService := service.NewTaskService(taskStore, userStore, membershipStore)

	authHandler := handlers.NewAuthHandler(userStore)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userStore)
	teamHandler := handlers.NewTeamHandler(membershipStore, userStore)

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		// Login endpoint
		api.POST("/login", authHandler.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Task endpoints
		protectedRoutes.GET("/tasks", taskHandler.GetTasksForUser)
		protectedRoutes.GET("/tasks/:id", taskHandler.GetTaskByID)
		protectedRoutes.POST("/tasks", taskHandler.CreateTask)
		protectedRoutes.PUT("/tasks/:id", taskHandler.UpdateTask)
		protectedRoutes.DELETE("/tasks/:id", taskHandler.DeleteTask)
		// Dashboard endpoints
		protectedRoutes.GET("/dashboard/user/:userId", taskHandler.GetTasksGroupedForUser)
		protectedRoutes.GET("/dashboard/team/:teamId", taskHandler.GetTeamTasksGrouped)
		protectedRoutes.GET("/dashboard/team-of-user/:userId", taskHandler.GetTeamTasksByUser)
		// Users and teams
		protectedRoutes.GET("/users", userHandler.GetAllUsers)
		protectedRoutes.GET("/teams/:teamId/members", teamHandler.GetTeamMembers)
		// Realtime events
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
