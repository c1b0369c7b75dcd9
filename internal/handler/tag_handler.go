package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"tierlist/backend/internal/database"
	"tierlist/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// TagInput is the body of a tag rename.
type TagInput struct {
	Name string `json:"name" binding:"required"`
}

// TagResponse is a tag as exposed to clients.
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

// tagRef is one entry of the tags form field: either an existing tag
// ({"id": 3}) or a tag to create ({"name": "Co-op"}).
type tagRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func parseTagRefs(raw string) ([]tagRef, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var refs []tagRef
	if err := json.Unmarshal([]byte(raw), &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// resolveTags turns tag references into tag ids, creating tags for new
// names. A tag that cannot be created is logged and skipped.
func (h *Handler) resolveTags(c *gin.Context, refs []tagRef) []uint {
	return resolveTagIDs(c.Request.Context(), h.store, refs)
}

type tagCreator interface {
	CreateTag(ctx context.Context, name string) (uint, error)
}

func resolveTagIDs(ctx context.Context, store tagCreator, refs []tagRef) []uint {
	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		if ref.ID != 0 {
			ids = append(ids, ref.ID)
			continue
		}

		name := strings.TrimSpace(ref.Name)
		if name == "" {
			continue
		}
		id, err := store.CreateTag(ctx, name)
		if err != nil {
			log.Printf("Error creating tag %q: %v", name, err)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// GetTags godoc
// @Summary      Get all tags
// @Description  Retrieves all tags ordered by name.
// @Tags         tags
// @Produce      json
// @Success      200  {array}   TagResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/tags [get]
func (h *Handler) GetTags(c *gin.Context) {
	tags, err := h.store.ListTags(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateTag godoc
// @Summary      Rename a tag
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Param        id    path int      true "Tag ID"
// @Param        input body TagInput true "New Tag Info"
// @Success      200  {object}  TagResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Tag not found"
// @Router       /api/admin/tags/{id} [put]
func (h *Handler) UpdateTag(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.store.RenameTag(c.Request.Context(), id, strings.TrimSpace(input.Name))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.publishGame(0, "tags")
	c.JSON(http.StatusOK, newTagResponse(*tag))
}

// DeleteTag godoc
// @Summary      Delete a tag
// @Description  Deletes a tag and detaches it from every game.
// @Tags         admin-tags
// @Produce      json
// @Param        id   path      int  true  "Tag ID"
// @Success      200  {object}  map[string]string "{"message": "Tag deleted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Tag not found"
// @Router       /api/admin/tags/{id} [delete]
func (h *Handler) DeleteTag(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	err = h.store.DeleteTag(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.publishGame(0, "tags")
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}
