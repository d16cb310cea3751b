package handlers

import (
	"errors"
	"net/http"

	"taskboard-api/internal/store"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves read-only team membership lookups. Creating and removing
// memberships happens outside this API.
type TeamHandler struct {
	memberships store.MembershipStore
	users       store.UserStore
}

// NewTeamHandler creates a TeamHandler over the membership and user stores.
func NewTeamHandler(memberships store.MembershipStore, users store.UserStore) *TeamHandler {
	return &TeamHandler{memberships: memberships, users: users}
}

// GetTeamMembers handles GET /api/teams/:teamId/members.
func (h *TeamHandler) GetTeamMembers(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	team, err := h.memberships.FindTeamByID(teamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
			return
		}
		respondError(c, err)
		return
	}

	memberIDs, err := h.memberships.FindUserIDsByTeamID(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	members := make([]UserResponse, 0, len(memberIDs))
	for _, id := range memberIDs {
		user, err := h.users.FindByID(id)
		if err != nil {
			// membership pointing at a removed user; skip it
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			respondError(c, err)
			return
		}
		members = append(members, UserResponse{ID: user.ID, Username: user.Username})
	}

	c.JSON(http.StatusOK, gin.H{
		"team":    team,
		"members": members,
		"count":   len(members),
	})
}
