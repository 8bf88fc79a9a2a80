package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 持有对局管理器，负责 /api/* 下的 JSON 接口
type Handler struct {
	games        *game.Manager
	defaultFirst xiangqi.Color
	log          *zap.Logger
}

func NewHandler(games *game.Manager, defaultFirst xiangqi.Color, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{games: games, defaultFirst: defaultFirst, log: log}
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空 body 也允许，全部用默认值
	if r.ContentLength != 0 {
		if !h.decode(w, r, &req) {
			return
		}
	}
	first := h.defaultFirst
	if req.First != "" {
		c, ok := xiangqi.ParseColor(req.First)
		if !ok {
			h.writeError(w, http.StatusBadRequest, "unknown color")
			return
		}
		first = c
	}
	snap, err := h.games.NewSession(first, req.Depth)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stateFromSnapshot(snap))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !h.decode(w, r, &req) {
		return
	}
	snap, err := h.games.Snapshot(req.GameID)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stateFromSnapshot(snap))
}

func (h *Handler) handleDestinations(w http.ResponseWriter, r *http.Request) {
	var req DestinationsRequest
	if !h.decode(w, r, &req) {
		return
	}
	from := xiangqi.Pos{X: req.X, Y: req.Y}
	dests, err := h.games.Destinations(req.GameID, from)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	if dests == nil {
		dests = []xiangqi.Pos{}
	}
	h.writeJSON(w, http.StatusOK, DestinationsResponse{From: from, Destinations: dests})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !h.decode(w, r, &req) {
		return
	}
	snap, err := h.games.Play(req.GameID, req.Move.toMove())
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stateFromSnapshot(snap))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !h.decode(w, r, &req) {
		return
	}
	snap, err := h.games.AIMove(req.GameID)
	if err != nil {
		h.writeGameError(w, err)
		return
	}

	resp := AiMoveResponse{StateResponse: stateFromSnapshot(snap)}
	if res := snap.LastAI; res != nil {
		resp.Score = res.Value
		resp.Nodes = res.Nodes
		resp.TimeMs = res.TimeUsed.Milliseconds()
		if res.Found {
			resp.BestMove = &MoveDTO{From: res.Move.From, To: res.Move.To}
		} else {
			resp.Status = game.StatusNoMoves
		}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !h.decode(w, r, &req) {
		return
	}
	snap, ok, err := h.games.Undo(req.GameID)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, UndoResponse{StateResponse: stateFromSnapshot(snap), Undone: ok})
}

func (h *Handler) writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "game not found")
	case errors.Is(err, xiangqi.ErrIllegalMove):
		h.writeError(w, http.StatusBadRequest, "illegal move")
	case errors.Is(err, game.ErrBadDepth):
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("depth must be between 1 and %d", h.games.MaxDepth()))
	case errors.Is(err, game.ErrGameOver):
		h.writeError(w, http.StatusConflict, "game is over")
	default:
		h.log.Error("api error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad json")
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("writeJSON error", zap.Error(err))
	}
}
