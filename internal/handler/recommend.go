package handler

import (
	"net/http"
	"time"

	"github.com/JulienMartel/old-binder/internal/agent/sanitize"
	"github.com/JulienMartel/old-binder/internal/logging"
	"github.com/JulienMartel/old-binder/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleRecommend(c *gin.Context) {
	var req model.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if h.svc == nil {
		writeUnavailable(c)
		return
	}

	favorites := sanitize.Lines(req.FavoriteBooks)

	start := time.Now()
	res, err := h.svc.Recommend(c.Request.Context(), favorites)
	if err != nil {
		writeUpstreamError(c, "recommend", err)
		return
	}

	recommendations := res.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	logging.Info().
		Str("request_id", c.GetString(requestIDKey)).
		Int("favorites", len(favorites)).
		Int("recommendations", len(recommendations)).
		Dur("duration", time.Since(start)).
		Msg("Recommendation completed")

	c.JSON(http.StatusOK, model.RecommendationResult{Recommendations: recommendations})
}
