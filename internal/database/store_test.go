package database_test

import (
	"context"
	"testing"

	"tierlist/backend/internal/database"
	"tierlist/backend/internal/models"
	"tierlist/backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStore(t *testing.T) (*database.Store, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	testutil.SeedTiers(t, db)
	return database.NewStore(db), db
}

func getGame(t *testing.T, db *gorm.DB, id uint) models.Game {
	t.Helper()
	var game models.Game
	require.NoError(t, db.First(&game, id).Error)
	return game
}

func gameTagIDs(t *testing.T, db *gorm.DB, gameID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&models.GameTag{}).Where("game_id = ?", gameID).Order("tag_id").Pluck("tag_id", &ids).Error)
	return ids
}

func TestStore_ListOrdering(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	zelda := testutil.CreateGame(t, db, "Zelda", 2)
	celeste := testutil.CreateGame(t, db, "Celeste", 1)
	apex := testutil.CreateGame(t, db, "Apex", 2)
	testutil.CreateTag(t, db, "Roguelike")
	testutil.CreateTag(t, db, "Action")

	games, err := store.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 3)
	// By tier, then storage order; never by name.
	assert.Equal(t, []uint{celeste.ID, zelda.ID, apex.ID}, []uint{games[0].ID, games[1].ID, games[2].ID})
	assert.Equal(t, "S", games[0].Tier.Label)

	tiers, err := store.ListTiers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "S", tiers[0].Label)
	assert.Equal(t, "B", tiers[2].Label)

	tags, err := store.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Action", tags[0].Name)
}

func TestStore_ProfileRole(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	admin := testutil.CreateProfile(t, db, models.RoleAdmin)
	role, err := store.ProfileRole(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)

	_, err = store.ProfileRole(ctx, uuid.New())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestStore_CreateAndUpdateGame(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	steamID := int64(620)
	id, err := store.CreateGame(ctx, database.GameFields{Name: "Portal 2", SteamID: &steamID, TierID: 1})
	require.NoError(t, err)

	game := getGame(t, db, id)
	require.NotNil(t, game.SteamID)
	assert.Equal(t, int64(620), *game.SteamID)
	assert.Nil(t, game.ImageURL)

	link := "https://youtube.com/watch?v=x"
	require.NoError(t, store.UpdateGame(ctx, id, database.GameFields{Name: "Portal 2 (2011)", YTLink: &link, TierID: 3}))

	game = getGame(t, db, id)
	assert.Equal(t, "Portal 2 (2011)", game.Name)
	assert.Nil(t, game.SteamID, "unset optional fields are cleared on update")
	require.NotNil(t, game.YTLink)
	assert.Equal(t, link, *game.YTLink)
	assert.Equal(t, uint(3), game.TierID)

	require.NoError(t, store.UpdateGameTier(ctx, id, 2))
	assert.Equal(t, uint(2), getGame(t, db, id).TierID)

	assert.ErrorIs(t, store.UpdateGame(ctx, 999, database.GameFields{Name: "Ghost", TierID: 1}), database.ErrNotFound)
	assert.ErrorIs(t, store.UpdateGameTier(ctx, 999, 1), database.ErrNotFound)
}

func TestStore_ReferentialIntegrity(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	_, err := store.CreateGame(ctx, database.GameFields{Name: "Nowhere", TierID: 999})
	assert.Error(t, err)

	game := testutil.CreateGame(t, db, "Hades", 1)
	assert.Error(t, store.UpdateGameTier(ctx, game.ID, 999))
	assert.Equal(t, uint(1), getGame(t, db, game.ID).TierID)

	tag := testutil.CreateTag(t, db, "Roguelike")
	assert.Error(t, store.InsertGameTags(ctx, 4242, []uint{tag.ID}))
	assert.Error(t, store.InsertGameTags(ctx, game.ID, []uint{777}))

	// A failed replacement rolls back its delete and keeps the previous set.
	require.NoError(t, store.InsertGameTags(ctx, game.ID, []uint{tag.ID}))
	assert.Error(t, store.ReplaceGameTags(ctx, game.ID, []uint{777}))
	assert.Equal(t, []uint{tag.ID}, gameTagIDs(t, db, game.ID))

	var orphans int64
	require.NoError(t, db.Model(&models.GameTag{}).Where("game_id = ?", 4242).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestStore_ReplaceGameTags(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	game := testutil.CreateGame(t, db, "Hades", 1)
	a := testutil.CreateTag(t, db, "A")
	b := testutil.CreateTag(t, db, "B")
	c := testutil.CreateTag(t, db, "C")

	require.NoError(t, store.InsertGameTags(ctx, game.ID, []uint{a.ID, b.ID}))
	require.NoError(t, store.ReplaceGameTags(ctx, game.ID, []uint{b.ID, c.ID, c.ID}))

	assert.Equal(t, []uint{b.ID, c.ID}, gameTagIDs(t, db, game.ID))

	require.NoError(t, store.ReplaceGameTags(ctx, game.ID, nil))
	assert.Empty(t, gameTagIDs(t, db, game.ID))
}

func TestStore_RecordVote(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	game := testutil.CreateGame(t, db, "Celeste", 1)
	alice := uuid.New()
	bob := uuid.New()

	count, err := store.RecordVote(ctx, game.ID, alice, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Same user again updates rather than duplicates.
	count, err = store.RecordVote(ctx, game.ID, alice, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.RecordVote(ctx, game.ID, bob, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = store.RecordVote(ctx, game.ID, alice, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Removing a vote that does not exist is not an error.
	count, err = store.RecordVote(ctx, game.ID, alice, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, int64(1), getGame(t, db, game.ID).Upvotes)

	votes, err := store.UserVotes(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{game.ID: 1}, votes)

	_, err = store.RecordVote(ctx, 999, alice, false)
	assert.ErrorIs(t, err, database.ErrNotFound)
	var stray int64
	require.NoError(t, db.Model(&models.Vote{}).Where("game_id = ?", 999).Count(&stray).Error)
	assert.Zero(t, stray)
}

func TestStore_RecountRepairsDrift(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	game := testutil.CreateGame(t, db, "Celeste", 1)
	require.NoError(t, db.Create(&models.Vote{GameID: game.ID, UserID: uuid.New(), Value: 1}).Error)
	require.NoError(t, db.Model(&models.Game{}).Where("id = ?", game.ID).Update("upvotes", 42).Error)

	// Any vote change recounts from the rows instead of adjusting the cache.
	count, err := store.RecordVote(ctx, game.ID, uuid.New(), true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(1), getGame(t, db, game.ID).Upvotes)
}

func TestStore_DeleteTagAndGame(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	game := testutil.CreateGame(t, db, "Hades", 1)
	tag := testutil.CreateTag(t, db, "Roguelike")
	require.NoError(t, store.InsertGameTags(ctx, game.ID, []uint{tag.ID}))

	renamed, err := store.RenameTag(ctx, tag.ID, "Roguelite")
	require.NoError(t, err)
	assert.Equal(t, "Roguelite", renamed.Name)

	require.NoError(t, store.DeleteTag(ctx, tag.ID))
	assert.Empty(t, gameTagIDs(t, db, game.ID))
	assert.ErrorIs(t, store.DeleteTag(ctx, tag.ID), database.ErrNotFound)

	_, err = store.RecordVote(ctx, game.ID, uuid.New(), false)
	require.NoError(t, err)
	require.NoError(t, store.DeleteGame(ctx, game.ID))
	assert.ErrorIs(t, store.DeleteGame(ctx, game.ID), database.ErrNotFound)
}

func TestStore_Postgres(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	testutil.SeedTiers(t, db)
	store := database.NewStore(db)
	ctx := context.Background()

	id, err := store.CreateGame(ctx, database.GameFields{Name: "Outer Wilds", TierID: models.DefaultTierID})
	require.NoError(t, err)

	user := uuid.New()
	count, err := store.RecordVote(ctx, id, user, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.RecordVote(ctx, id, user, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
