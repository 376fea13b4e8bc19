package handler

import (
	"errors"
	"log"
	"net/http"

	"nifty-advisor/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type subscribeMessage struct {
	Symbol string `json:"symbol"`
}

// StreamPrices godoc
// @Summary      Stream live price updates over a websocket
// @Description  Upgrades the connection, reads a {"symbol": "..."} message and
// @Description  pushes price updates until the client disconnects.
// @Tags         stocks
// @Router       /api/stream [get]
func (h *Handler) StreamPrices(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("stream upgrade: %v", err)
		return
	}
	defer conn.Close()

	var msg subscribeMessage
	if err := conn.ReadJSON(&msg); err != nil {
		return
	}

	updates, stop, err := h.stream.Subscribe(c.Request.Context(), msg.Symbol)
	if err != nil {
		if errors.Is(err, domain.ErrStreamLimit) {
			conn.WriteJSON(gin.H{"error": "too many active streams"})
		} else {
			conn.WriteJSON(gin.H{"error": "failed to subscribe"})
		}
		return
	}
	defer stop()

	// Drain the read side so we notice the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
