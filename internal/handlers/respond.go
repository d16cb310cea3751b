package handlers

import (
	"errors"
	"log"
	"net/http"

	"taskboard-api/internal/service"

	"github.com/gin-gonic/gin"
)

// statusForError maps a service error to an HTTP status code.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error as JSON. Unexpected failures are logged with
// their original message and surfaced as a generic server error.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Println("internal error:", err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
