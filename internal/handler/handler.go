package handler

import (
	"context"

	"github.com/JulienMartel/old-binder/internal/model"

	"github.com/gin-gonic/gin"
)

// Service is the recommendation core the HTTP boundary delegates to
type Service interface {
	LookupAuthor(ctx context.Context, title string) (*model.AuthorLookupResult, error)
	Recommend(ctx context.Context, favoriteBooks []string) (*model.RecommendationResult, error)
}

// Handler serves the /api endpoints and the health probes.
// A nil Service leaves the process up but reports it as not ready.
type Handler struct {
	svc      Service
	provider string
}

func New(svc Service, provider string) *Handler {
	return &Handler{svc: svc, provider: provider}
}

// RegisterRoutes mounts the API endpoints on an /api group
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/author", h.HandleAuthor)
	api.POST("/recommend", h.HandleRecommend)
}

// RegisterProbes mounts /health and /ready outside the /api group
func (h *Handler) RegisterProbes(r gin.IRoutes) {
	r.GET("/health", h.HandleHealth)
	r.GET("/ready", h.HandleReadiness)
}
