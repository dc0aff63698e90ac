package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/reversilabs/flipdisc/internal/analysis"
	"github.com/reversilabs/flipdisc/internal/models"
	"github.com/reversilabs/flipdisc/internal/repository"
	"github.com/reversilabs/flipdisc/internal/services"
)

const (
	bookWriteTimeout = 2 * time.Second
)

// Handler serves analysis requests over a single websocket connection.
type Handler struct {
	services *services.Services
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "analyze_request":
		return h.handleAnalyzeRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleAnalyzeRequest(req *Incoming) (*Outgoing, error) {
	var reqData models.AnalyzeRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws analyze request unmarshal error: %w", err)
	}

	board, err := reqData.Validate()
	if err != nil {
		return nil, fmt.Errorf("ws analyze request invalid: %w", err)
	}

	response, entry, err := analysis.Run(board, reqData)
	if err != nil {
		return nil, fmt.Errorf("ws analyze request failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), bookWriteTimeout)
	defer cancel()

	repo := repository.NewBookRepositoryFromServices(h.services)
	payload := models.PlayoutsPayload{Playouts: []models.BookEntry{entry}}
	if err := repo.SubmitPlayouts(ctx, payload); err != nil {
		slog.Error("Failed to store analysis in book", "error", err)
	}

	outgoing := &Outgoing{
		ID:   req.ID,
		Data: response,
	}

	return outgoing, nil
}
