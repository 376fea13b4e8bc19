package handler

import (
	"errors"
	"log"
	"net/http"

	"nifty-advisor/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// SearchStock godoc
// @Summary      Search for a stock by symbol or company name
// @Description  Resolves the query against the NSE universe and returns the
// @Description  current quote alongside recent daily history.
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true  "Stock symbol or company name"
// @Success      200     {object}  domain.SearchResult
// @Failure      404     {object}  map[string]string
// @Failure      503     {object}  map[string]string
// @Router       /api/search/{symbol} [get]
func (h *Handler) SearchStock(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.SearchStock")
	defer span.End()

	symbol := c.Param("symbol")
	span.SetAttributes(attribute.String("stock.symbol", symbol))

	result, err := h.market.Search(ctx, symbol)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
		case errors.Is(err, domain.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "market data service not configured"})
		default:
			log.Printf("search %s: %v", symbol, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stock data"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
