package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"tierlist/backend/internal/auth"
	"tierlist/backend/internal/database"
	"tierlist/backend/internal/hub"
	"tierlist/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- Form parsing ---

// gameForm is the parsed addGame/editGame form.
type gameForm struct {
	Fields database.GameFields
	Tags   []tagRef
}

func parseGameForm(c *gin.Context) (*gameForm, string) {
	form := &gameForm{
		Fields: database.GameFields{
			Name:     strings.TrimSpace(c.PostForm("name")),
			ImageURL: optionalString(c.PostForm("image_url")),
			IGLink:   optionalString(c.PostForm("ig_link")),
			YTLink:   optionalString(c.PostForm("yt_link")),
			TierID:   models.DefaultTierID,
		},
	}

	if raw := strings.TrimSpace(c.PostForm("steam_id")); raw != "" {
		steamID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "steam_id must be a number"
		}
		form.Fields.SteamID = &steamID
	}

	if raw := strings.TrimSpace(c.PostForm("tier_id")); raw != "" {
		tierID, err := parseID(raw)
		if err != nil {
			return nil, "tier_id must be a positive number"
		}
		form.Fields.TierID = tierID
	}

	tags, err := parseTagRefs(c.PostForm("tags"))
	if err != nil {
		return nil, "tags must be a JSON array of {id} or {name} objects"
	}
	form.Tags = tags

	return form, ""
}

func optionalString(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(id), nil
}

// endregion

// requireAdmin applies the authentication and admin checks shared by the
// curation actions. It writes the response and returns false when the
// request must stop.
func (h *Handler) requireAdmin(c *gin.Context, deniedMessage string) bool {
	rc := auth.FromContext(c)
	if !rc.Authenticated() {
		c.JSON(http.StatusUnauthorized, ActionResult{Success: false, Message: "Not logged in"})
		return false
	}

	isAdmin, err := rc.IsAdmin(c.Request.Context())
	if err != nil {
		log.Printf("Error loading profile: %v", err)
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: err.Error()})
		return false
	}
	if !isAdmin {
		c.JSON(http.StatusForbidden, ActionResult{Success: false, Message: deniedMessage})
		return false
	}
	return true
}

func (h *Handler) publishGame(gameID uint, action string) {
	h.events.Broadcast(hub.Event{Type: hub.EventGames, Payload: hub.GamesPayload{GameID: gameID, Action: action}})
}

// UpdateTier godoc
// @Summary      Move a game to another tier
// @Tags         actions
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        gameId formData int true "Game ID"
// @Param        tierId formData int true "Tier ID"
// @Success      200  {object}  ActionResult
// @Failure      401  {object}  ActionResult "Not logged in"
// @Failure      403  {object}  ActionResult "Admin access required"
// @Router       /actions/updateTier [post]
func (h *Handler) UpdateTier(c *gin.Context) {
	if !h.requireAdmin(c, "Only admins may change tiers") {
		return
	}

	gameID, gameErr := parseID(c.PostForm("gameId"))
	tierID, tierErr := parseID(c.PostForm("tierId"))
	if gameErr != nil || tierErr != nil {
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: "gameId and tierId are required"})
		return
	}

	if err := h.store.UpdateGameTier(c.Request.Context(), gameID, tierID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusOK, ActionResult{Success: false, Message: "Game not found"})
			return
		}
		log.Printf("Error updating tier: %v", err)
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: err.Error()})
		return
	}

	h.publishGame(gameID, "moved")
	c.JSON(http.StatusOK, ActionResult{Success: true})
}

// AddGame godoc
// @Summary      Add a game
// @Description  Creates a game and attaches existing or newly created tags.
// @Tags         actions
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name      formData string true  "Game name"
// @Param        steam_id  formData int    false "Steam app id"
// @Param        image_url formData string false "Image URL"
// @Param        tier_id   formData int    false "Tier ID (defaults to 1)"
// @Param        ig_link   formData string false "Instagram link"
// @Param        yt_link   formData string false "YouTube link"
// @Param        tags      formData string false "JSON array of {id} or {name}"
// @Success      200  {object}  ActionResult
// @Failure      401  {object}  ActionResult "Not logged in"
// @Failure      403  {object}  ActionResult "Admin access required"
// @Router       /actions/addGame [post]
func (h *Handler) AddGame(c *gin.Context) {
	if !h.requireAdmin(c, "Only admins may add games") {
		return
	}

	form, problem := parseGameForm(c)
	if problem != "" {
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: problem})
		return
	}
	if form.Fields.Name == "" {
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: "Name is required"})
		return
	}

	ctx := c.Request.Context()
	gameID, err := h.store.CreateGame(ctx, form.Fields)
	if err != nil {
		log.Printf("Error adding game: %v", err)
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: err.Error()})
		return
	}

	if len(form.Tags) > 0 {
		tagIDs := h.resolveTags(c, form.Tags)
		if err := h.store.InsertGameTags(ctx, gameID, tagIDs); err != nil {
			log.Printf("Error inserting game_tags: %v", err)
			h.publishGame(gameID, "created")
			c.JSON(http.StatusOK, ActionResult{Success: false, Message: err.Error()})
			return
		}
	}

	h.publishGame(gameID, "created")
	c.JSON(http.StatusOK, ActionResult{Success: true})
}

// EditGame godoc
// @Summary      Edit a game
// @Description  Overwrites a game's fields and replaces its whole tag set.
// @Tags         actions
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        game_id   formData int    true  "Game ID"
// @Param        name      formData string true  "Game name"
// @Param        steam_id  formData int    false "Steam app id"
// @Param        image_url formData string false "Image URL"
// @Param        tier_id   formData int    false "Tier ID (defaults to 1)"
// @Param        ig_link   formData string false "Instagram link"
// @Param        yt_link   formData string false "YouTube link"
// @Param        tags      formData string false "JSON array of {id} or {name}"
// @Success      200  {object}  ActionResult
// @Failure      401  {object}  ActionResult "Not logged in"
// @Failure      403  {object}  ActionResult "Admin access required"
// @Router       /actions/editGame [post]
func (h *Handler) EditGame(c *gin.Context) {
	if !h.requireAdmin(c, "Only admins may edit games") {
		return
	}

	gameID, idErr := parseID(c.PostForm("game_id"))
	form, problem := parseGameForm(c)
	if idErr != nil || (form != nil && form.Fields.Name == "") {
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: "game_id and name are required"})
		return
	}
	if problem != "" {
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: problem})
		return
	}

	ctx := c.Request.Context()
	if err := h.store.UpdateGame(ctx, gameID, form.Fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusOK, ActionResult{Success: false, Message: "Game not found"})
			return
		}
		log.Printf("Error updating game: %v", err)
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: err.Error()})
		return
	}

	// Tag membership is overwritten, never merged.
	tagIDs := h.resolveTags(c, form.Tags)
	if err := h.store.ReplaceGameTags(ctx, gameID, tagIDs); err != nil {
		log.Printf("Error replacing game_tags: %v", err)
		h.publishGame(gameID, "edited")
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: err.Error()})
		return
	}

	h.publishGame(gameID, "edited")
	c.JSON(http.StatusOK, ActionResult{Success: true})
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game together with its tags associations and votes.
// @Tags         actions
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        game_id formData int true "Game ID"
// @Success      200  {object}  ActionResult
// @Failure      401  {object}  ActionResult "Not logged in"
// @Failure      403  {object}  ActionResult "Admin access required"
// @Router       /actions/deleteGame [post]
func (h *Handler) DeleteGame(c *gin.Context) {
	if !h.requireAdmin(c, "Only admins may delete games") {
		return
	}

	gameID, err := parseID(c.PostForm("game_id"))
	if err != nil {
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: "game_id is required"})
		return
	}

	if err := h.store.DeleteGame(c.Request.Context(), gameID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusOK, ActionResult{Success: false, Message: "Game not found"})
			return
		}
		log.Printf("Error deleting game: %v", err)
		c.JSON(http.StatusOK, ActionResult{Success: false, Message: err.Error()})
		return
	}

	h.publishGame(gameID, "deleted")
	c.JSON(http.StatusOK, ActionResult{Success: true})
}
