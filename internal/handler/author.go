package handler

import (
	"net/http"
	"time"

	"github.com/JulienMartel/old-binder/internal/agent/sanitize"
	"github.com/JulienMartel/old-binder/internal/logging"
	"github.com/JulienMartel/old-binder/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleAuthor(c *gin.Context) {
	var req model.AuthorLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if h.svc == nil {
		writeUnavailable(c)
		return
	}

	title := sanitize.Text(*req.Title)

	start := time.Now()
	res, err := h.svc.LookupAuthor(c.Request.Context(), title)
	if err != nil {
		writeUpstreamError(c, "author", err)
		return
	}

	logging.Info().
		Str("request_id", c.GetString(requestIDKey)).
		Dur("duration", time.Since(start)).
		Bool("author_found", res.Author != "").
		Msg("Author lookup completed")

	c.JSON(http.StatusOK, res)
}
