package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/danhquyen2004/Block-Blast/pkg/game"
	"github.com/danhquyen2004/Block-Blast/pkg/log"
	"github.com/danhquyen2004/Block-Blast/pkg/messages"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// HandleSessionSocket plays a session over a websocket. The server sends the
// session view on connect; each client frame is answered with a result frame
// followed by the events it produced.
func HandleSessionSocket(manager *game.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := lookupSession(manager, w, r)
		if !ok {
			return
		}
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			log.Error("Failed to accept websocket connection: %v", err)
			return
		}
		defer conn.Close(websocket.StatusInternalError, "")
		conn.SetReadLimit(messages.MessageBufferSize)

		ctx := r.Context()
		if err := writeFrame(ctx, conn, messages.MessageTypeServerView, session.View()); err != nil {
			log.Debug("Failed to send initial view for session %s: %v", session.ID(), err)
			return
		}
		if err := flushEvents(ctx, conn, session); err != nil {
			return
		}

		for {
			msg := &messages.Message{}
			if err := wsjson.Read(ctx, conn, msg); err != nil {
				status := websocket.CloseStatus(err)
				if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
					conn.Close(websocket.StatusNormalClosure, "")
					return
				}
				log.Debug("Websocket for session %s closed: %v", session.ID(), err)
				return
			}
			if err := handleSocketMessage(ctx, conn, session, msg); err != nil {
				log.Error("Failed to handle %s frame for session %s: %v", msg.Type, session.ID(), err)
				return
			}
		}
	}
}

func handleSocketMessage(ctx context.Context, conn *websocket.Conn, session *game.Session, msg *messages.Message) error {
	switch msg.Type {
	case messages.MessageTypeClientView:
		return writeFrame(ctx, conn, messages.MessageTypeServerView, session.View())
	case messages.MessageTypeClientPreview, messages.MessageTypeClientPlace:
		req := &messages.PlacementRequest{}
		if err := json.Unmarshal(msg.Payload, req); err != nil {
			return writeFrame(ctx, conn, messages.MessageTypeServerError, &messages.ErrorResponse{Error: "invalid placement request"})
		}
		if msg.Type == messages.MessageTypeClientPreview {
			preview, err := session.Preview(req.Slot, req.Anchor())
			if err != nil {
				return writeSessionError(ctx, conn, err)
			}
			return writeFrame(ctx, conn, messages.MessageTypeServerPreview, preview)
		}
		result, err := session.Place(req.Slot, req.Anchor())
		if err != nil {
			return writeSessionError(ctx, conn, err)
		}
		if err := writeFrame(ctx, conn, messages.MessageTypeServerTurn, result); err != nil {
			return err
		}
		return flushEvents(ctx, conn, session)
	default:
		return writeFrame(ctx, conn, messages.MessageTypeServerError, &messages.ErrorResponse{Error: fmt.Sprintf("unknown message type %q", msg.Type)})
	}
}

// writeSessionError reports rule violations to the client and fails the
// connection on anything else.
func writeSessionError(ctx context.Context, conn *websocket.Conn, err error) error {
	if errors.Is(err, game.ErrInvalidSlot) || errors.Is(err, game.ErrPieceAlreadyPlaced) || errors.Is(err, game.ErrGameOver) {
		return writeFrame(ctx, conn, messages.MessageTypeServerError, &messages.ErrorResponse{Error: err.Error()})
	}
	return err
}

func flushEvents(ctx context.Context, conn *websocket.Conn, session *game.Session) error {
	for _, e := range session.Events() {
		msg, err := messages.NewEventMessage(e)
		if err != nil {
			return err
		}
		if err := wsjson.Write(ctx, conn, msg); err != nil {
			return fmt.Errorf("failed to write event: %v", err)
		}
	}
	return nil
}

func writeFrame(ctx context.Context, conn *websocket.Conn, messageType string, payload interface{}) error {
	msg, err := messages.NewMessage(messageType, payload)
	if err != nil {
		return err
	}
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		return fmt.Errorf("failed to write %s frame: %v", messageType, err)
	}
	return nil
}
