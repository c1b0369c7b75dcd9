package handler

import (
	"errors"
	"log"
	"net/http"

	"tierlist/backend/internal/auth"
	"tierlist/backend/internal/database"
	"tierlist/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// VoteInput is the body of a vote request. A null or absent value removes
// the caller's vote; any other value casts it.
type VoteInput struct {
	GameID *uint `json:"gameId" example:"5"`
	Value  any   `json:"value" swaggertype:"integer" example:"1"`
}

// VoteResponse carries the recomputed upvote count.
type VoteResponse struct {
	Success bool  `json:"success"`
	Upvotes int64 `json:"upvotes"`
}

// Vote godoc
// @Summary      Cast or remove a vote
// @Description  Upserts (value set) or deletes (value null) the caller's vote on a game and returns the recomputed upvote count. Votes are binary: the stored value is always 1.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        input body VoteInput true "Vote"
// @Success      200  {object}  VoteResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Not logged in"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /api/vote [post]
func (h *Handler) Vote(c *gin.Context) {
	rc := auth.FromContext(c)
	if !rc.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	var input VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.GameID == nil || *input.GameID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gameId is required"})
		return
	}
	gameID := *input.GameID

	upvotes, err := h.store.RecordVote(c.Request.Context(), gameID, rc.User.ID, input.Value == nil)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		log.Printf("Error recording vote: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.events.Broadcast(hub.Event{Type: hub.EventUpvotes, Payload: hub.UpvotesPayload{GameID: gameID, Upvotes: upvotes}})
	c.JSON(http.StatusOK, VoteResponse{Success: true, Upvotes: upvotes})
}
