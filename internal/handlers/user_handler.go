package handlers

import (
	"net/http"
	"time"

	"taskboard-api/internal/cache"
	"taskboard-api/internal/store"

	"github.com/gin-gonic/gin"
)

// UserResponse is the directory view of a user.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

const userDirectoryTTL = 30 * time.Second

// UserHandler serves the user directory.
type UserHandler struct {
	users     store.UserStore
	directory cache.Cache[string, []UserResponse]
}

// NewUserHandler creates a UserHandler backed by the given user store.
func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{
		users:     users,
		directory: cache.NewTTLCache[string, []UserResponse](),
	}
}

// GetAllUsers returns all users (protected)
// GET /api/users
// The directory changes rarely, so responses are cached briefly.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	if resp, ok := h.directory.Get("all"); ok {
		c.JSON(http.StatusOK, gin.H{
			"users": resp,
			"count": len(resp),
		})
		return
	}

	users, err := h.users.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	// Map to safe response payload
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserResponse{
			ID:       u.ID,
			Username: u.Username,
		})
	}
	h.directory.Set("all", resp, userDirectoryTTL)

	c.JSON(http.StatusOK, gin.H{
		"users": resp,
		"count": len(resp),
	})
}
