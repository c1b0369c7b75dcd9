package handler

import (
	"log"
	"net/http"

	"tierlist/backend/internal/steam"

	"github.com/gin-gonic/gin"
)

// SearchSteam godoc
// @Summary      Search the Steam store
// @Description  Proxies a Steam store search. Queries shorter than two characters return an empty list without calling Steam.
// @Tags         search
// @Produce      json
// @Param        q query string true "Search term"
// @Success      200  {array}  steam.Result
// @Failure      502  {array}  steam.Result "Steam returned an error"
// @Router       /api/steam-search [get]
func (h *Handler) SearchSteam(c *gin.Context) {
	results, err := h.search.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("Error searching steam: %v", err)
		c.JSON(http.StatusBadGateway, []steam.Result{})
		return
	}
	c.JSON(http.StatusOK, results)
}
