package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"nifty-advisor/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetNews godoc
// @Summary      Recent headlines for a stock
// @Description  Returns placeholder headlines until a news provider is wired in.
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true  "Stock symbol"
// @Success      200     {array}   domain.NewsItem
// @Router       /api/news/{symbol} [get]
func (h *Handler) GetNews(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.GetNews")
	defer span.End()

	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	now := time.Now()

	items := []domain.NewsItem{
		{
			Title:     fmt.Sprintf("Latest updates on %s", symbol),
			Source:    "Economic Times",
			URL:       "#",
			Published: now.Format(time.RFC3339),
		},
		{
			Title:     fmt.Sprintf("%s quarterly results announced", symbol),
			Source:    "Business Standard",
			URL:       "#",
			Published: now.AddDate(0, 0, -1).Format(time.RFC3339),
		},
	}

	c.JSON(http.StatusOK, items)
}
