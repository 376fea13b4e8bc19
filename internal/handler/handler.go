package handler

import (
	"context"
	"net/http"

	"nifty-advisor/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type StockSearcher interface {
	Search(ctx context.Context, symbol string) (*domain.SearchResult, error)
}

type Recommender interface {
	Recommend(ctx context.Context, profile domain.UserProfile, filters domain.ScreenFilters) ([]domain.RankedRecommendation, error)
}

type Subscriber interface {
	Subscribe(ctx context.Context, symbol string) (<-chan domain.PriceUpdate, func(), error)
}

type Handler struct {
	tracer    trace.Tracer
	market    StockSearcher
	recommend Recommender
	stream    Subscriber
}

func New(
	tracer trace.Tracer,
	market StockSearcher,
	recommend Recommender,
	stream Subscriber,
) *Handler {
	return &Handler{
		tracer:    tracer,
		market:    market,
		recommend: recommend,
		stream:    stream,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/search/:symbol", h.SearchStock)
	r.POST("/api/recommendations", h.GetRecommendations)
	r.GET("/api/news/:symbol", h.GetNews)
	r.GET("/api/stream", h.StreamPrices)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
