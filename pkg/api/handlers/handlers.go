package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danhquyen2004/Block-Blast/pkg/game"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/log"
	"github.com/danhquyen2004/Block-Blast/pkg/messages"
	"github.com/gorilla/mux"
)

const maxRequestBodySize = 4 * 1024

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &messages.ErrorResponse{Error: msg})
}

// statusForError maps session errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, game.ErrInvalidSlot), errors.Is(err, game.ErrPieceAlreadyPlaced):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, game.ErrNoSavedGame):
		return http.StatusNotFound
	case errors.Is(err, snapshot.ErrCorruptSnapshot):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func lookupSession(manager *game.SessionManager, w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	sessionID := mux.Vars(r)["sessionID"]
	session, ok := manager.Get(sessionID)
	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return session, true
}

func decodePlacement(w http.ResponseWriter, r *http.Request) (*messages.PlacementRequest, bool) {
	req := &messages.PlacementRequest{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid placement request")
		return nil, false
	}
	return req, true
}

func HandleNewGame(manager *game.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := mux.Vars(r)["playerID"]
		session, err := manager.NewGame(r.Context(), playerID)
		if err != nil {
			log.Error("failed to start new game for player %s: %v", playerID, err)
			writeError(w, http.StatusInternalServerError, "Failed to start new game")
			return
		}
		writeJSON(w, http.StatusCreated, session.View())
	}
}

func HandleResumeGame(manager *game.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := mux.Vars(r)["playerID"]
		session, err := manager.ResumeGame(r.Context(), playerID)
		if err != nil {
			status := statusForError(err)
			switch status {
			case http.StatusNotFound:
				writeError(w, status, "No saved game")
			case http.StatusUnprocessableEntity:
				log.Warn("saved game for player %s is corrupt: %v", playerID, err)
				writeError(w, status, "Saved game is corrupt")
			default:
				log.Error("failed to resume game for player %s: %v", playerID, err)
				writeError(w, status, "Failed to resume game")
			}
			return
		}
		writeJSON(w, http.StatusOK, session.View())
	}
}

func HandleBestScore(manager *game.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := mux.Vars(r)["playerID"]
		best, err := manager.BestScore(r.Context(), playerID)
		if err != nil {
			log.Error("failed to load best score for player %s: %v", playerID, err)
			writeError(w, http.StatusInternalServerError, "Failed to load best score")
			return
		}
		writeJSON(w, http.StatusOK, &messages.BestScoreResponse{PlayerID: playerID, BestScore: best})
	}
}

func HandleListShapes(catalog *shapes.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := catalog.AllShapes()
		views := make([]messages.ShapeView, len(all))
		for i, s := range all {
			views[i] = messages.ShapeView{Index: i, Name: s.Name(), Offsets: s.Offsets()}
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func HandleGetSession(manager *game.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := lookupSession(manager, w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, session.View())
	}
}

func HandlePreview(manager *game.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := lookupSession(manager, w, r)
		if !ok {
			return
		}
		req, ok := decodePlacement(w, r)
		if !ok {
			return
		}
		preview, err := session.Preview(req.Slot, req.Anchor())
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, preview)
	}
}

func HandlePlace(manager *game.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := lookupSession(manager, w, r)
		if !ok {
			return
		}
		req, ok := decodePlacement(w, r)
		if !ok {
			return
		}
		result, err := session.Place(req.Slot, req.Anchor())
		if err != nil {
			status := statusForError(err)
			if status == http.StatusInternalServerError {
				log.Error("failed to place piece in session %s: %v", session.ID(), err)
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// HandleEvents drains the session's pending notifications.
func HandleEvents(manager *game.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := lookupSession(manager, w, r)
		if !ok {
			return
		}
		events := session.Events()
		payloads := make([]messages.EventPayload, len(events))
		for i, e := range events {
			payloads[i] = messages.EventPayload{Event: e.EventType(), Data: e}
		}
		writeJSON(w, http.StatusOK, payloads)
	}
}

func HandleDeleteSession(manager *game.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !manager.Remove(mux.Vars(r)["sessionID"]) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
