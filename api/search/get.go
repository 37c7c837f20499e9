package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ytkit/transcript-api/api/types"
	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/store"
)

// Get handles transcript search requests
// @Summary      Search stored transcripts
// @Description  Find segments whose text contains the query, matched case-insensitively, grouped by video in playback order
// @Tags         search
// @Produce      json
// @Param        q query string true "Search phrase"
// @Param        db query string false "Override the store path"
// @Success      200 {object} types.SearchResponse "Matching segments"
// @Failure      400 {object} types.BaseResponse "Missing or empty query"
// @Router       /api/v1/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")

		db, err := database.Initialize(deps.StorePath(c.Query("db")), false)
		if err != nil {
			types.Error(c, err)
			return
		}
		defer db.Close()

		results, err := store.NewRepository(db.DB).Search(c.Request.Context(), query)
		if err != nil {
			types.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, types.SearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Query:        query,
			ResultCount:  len(results),
			Results:      results,
		})
	}
}
