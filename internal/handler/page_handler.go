package handler

import (
	"context"
	"log"
	"net/http"

	"tierlist/backend/internal/auth"
	"tierlist/backend/internal/identity"
	"tierlist/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// region --- DTOs ---

// TierRef is the tier summary embedded in each game.
type TierRef struct {
	Label     string `json:"label"`
	RankOrder int    `json:"rank_order"`
}

// GameResponse is a game joined with its tier and tags.
type GameResponse struct {
	ID       uint          `json:"id"`
	Name     string        `json:"name"`
	SteamID  *int64        `json:"steam_id"`
	ImageURL *string       `json:"image_url"`
	TierID   uint          `json:"tier_id"`
	IGLink   *string       `json:"ig_link"`
	YTLink   *string       `json:"yt_link"`
	Upvotes  int64         `json:"upvotes"`
	Tier     TierRef       `json:"tier"`
	Tags     []TagResponse `json:"tags"`
}

func newGameResponse(game models.Game) GameResponse {
	tags := make([]TagResponse, 0, len(game.GameTags))
	for _, gt := range game.GameTags {
		tags = append(tags, TagResponse{ID: gt.TagID, Name: gt.Tag.Name})
	}

	return GameResponse{
		ID:       game.ID,
		Name:     game.Name,
		SteamID:  game.SteamID,
		ImageURL: game.ImageURL,
		TierID:   game.TierID,
		IGLink:   game.IGLink,
		YTLink:   game.YTLink,
		Upvotes:  game.Upvotes,
		Tier:     TierRef{Label: game.Tier.Label, RankOrder: game.Tier.RankOrder},
		Tags:     tags,
	}
}

// UserResponse is the signed-in user as exposed to the page.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
}

// PageData is the read model of the home page.
type PageData struct {
	Games     []GameResponse `json:"games"`
	Tiers     []models.Tier  `json:"tiers"`
	Tags      []TagResponse  `json:"tags"`
	IsAdmin   bool           `json:"is_admin"`
	UserVotes map[uint]int   `json:"user_votes"`
	Session   *auth.Session  `json:"session"`
	User      *UserResponse  `json:"user"`
}

// tierRow groups games under their tier for the HTML view.
type tierRow struct {
	Tier  models.Tier
	Games []GameResponse
}

type homeView struct {
	PageData
	Rows []tierRow
}

// endregion

// GetPage godoc
// @Summary      Get the tier list
// @Description  Returns games with their tier and tags, all tiers and tags, the viewer's admin flag and votes.
// @Tags         page
// @Produce      json
// @Success      200  {object}  PageData
// @Failure      500  {object}  ErrorResponse
// @Router       /api/page [get]
func (h *Handler) GetPage(c *gin.Context) {
	data, err := h.loadPage(c.Request.Context(), auth.FromContext(c))
	if err != nil {
		log.Printf("Error loading page: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetHome renders the tier list page.
func (h *Handler) GetHome(c *gin.Context) {
	data, err := h.loadPage(c.Request.Context(), auth.FromContext(c))
	if err != nil {
		log.Printf("Error loading page: %v", err)
		c.String(http.StatusInternalServerError, "Failed to load the tier list")
		return
	}
	c.HTML(http.StatusOK, "home.tmpl", homeView{PageData: *data, Rows: groupByTier(data.Tiers, data.Games)})
}

func (h *Handler) loadPage(ctx context.Context, rc *auth.RequestContext) (*PageData, error) {
	games, err := h.store.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	tiers, err := h.store.ListTiers(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := h.store.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	data := &PageData{
		Games:     make([]GameResponse, 0, len(games)),
		Tiers:     tiers,
		Tags:      make([]TagResponse, 0, len(tags)),
		UserVotes: map[uint]int{},
		Session:   rc.Session,
		User:      newUserResponse(rc.User),
	}
	for _, game := range games {
		data.Games = append(data.Games, newGameResponse(game))
	}
	for _, tag := range tags {
		data.Tags = append(data.Tags, newTagResponse(tag))
	}

	if !rc.Authenticated() {
		return data, nil
	}

	// The viewer-specific parts degrade instead of failing the page.
	if data.IsAdmin, err = rc.IsAdmin(ctx); err != nil {
		log.Printf("Error loading profile: %v", err)
	}
	votes, err := h.store.UserVotes(ctx, rc.User.ID)
	if err != nil {
		log.Printf("Error loading votes: %v", err)
	} else {
		data.UserVotes = votes
	}

	return data, nil
}

func newUserResponse(user *identity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{ID: user.ID, Email: user.Email, DisplayName: user.DisplayName()}
}

func groupByTier(tiers []models.Tier, games []GameResponse) []tierRow {
	rows := make([]tierRow, len(tiers))
	index := make(map[uint]int, len(tiers))
	for i, tier := range tiers {
		rows[i] = tierRow{Tier: tier}
		index[tier.ID] = i
	}
	for _, game := range games {
		if i, ok := index[game.TierID]; ok {
			rows[i].Games = append(rows[i].Games, game)
		}
	}
	return rows
}
