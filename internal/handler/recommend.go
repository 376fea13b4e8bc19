package handler

import (
	"errors"
	"log"
	"net/http"

	"nifty-advisor/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type recommendationRequest struct {
	Budget        float64  `json:"budget"`
	RiskTolerance string   `json:"risk_tolerance"`
	MinMarketCap  float64  `json:"min_market_cap"`
	MaxPE         float64  `json:"max_pe"`
	MinVolume     int64    `json:"min_volume"`
	Sectors       []string `json:"sectors"`
}

// GetRecommendations godoc
// @Summary      Rank the stock universe for an investor profile
// @Description  Scores every stock in the NSE universe against the supplied
// @Description  budget and risk tolerance, then returns the top matches.
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        profile  body      recommendationRequest  false  "Investor profile and screening filters"
// @Success      200      {array}   domain.RankedRecommendation
// @Failure      503      {object}  map[string]string
// @Router       /api/recommendations [post]
func (h *Handler) GetRecommendations(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.GetRecommendations")
	defer span.End()

	var req recommendationRequest
	// Missing or malformed bodies fall back to service defaults.
	if err := c.ShouldBindJSON(&req); err != nil {
		req = recommendationRequest{}
	}
	span.SetAttributes(
		attribute.Float64("profile.budget", req.Budget),
		attribute.String("profile.risk_tolerance", req.RiskTolerance),
	)

	profile := domain.UserProfile{
		Budget:        req.Budget,
		RiskTolerance: domain.RiskTolerance(req.RiskTolerance),
	}
	filters := domain.ScreenFilters{
		MinMarketCap: req.MinMarketCap,
		MaxPE:        req.MaxPE,
		MinVolume:    req.MinVolume,
		Sectors:      req.Sectors,
	}

	recs, err := h.recommend.Recommend(ctx, profile, filters)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "market data service not configured"})
			return
		}
		log.Printf("recommendations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build recommendations"})
		return
	}
	if recs == nil {
		recs = []domain.RankedRecommendation{}
	}

	c.JSON(http.StatusOK, recs)
}
