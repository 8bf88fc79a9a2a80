package httpserver

import (
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// 前端用的招法结构，坐标 x=列 0..8，y=行 0..9（0 在黑方底线）
type MoveDTO struct {
	From xiangqi.Pos `json:"from"`
	To   xiangqi.Pos `json:"to"`
}

func (m MoveDTO) toMove() xiangqi.Move {
	return xiangqi.Move{From: m.From, To: m.To}
}

type NewGameRequest struct {
	First string `json:"first"` // "red" / "black"，空为配置默认
	Depth int    `json:"depth"` // <=0 用配置默认
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

type DestinationsRequest struct {
	GameID string `json:"game_id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// StateResponse new_game / state / play / undo 共用
type StateResponse struct {
	GameID     string      `json:"game_id"`
	Position   string      `json:"position"` // FEN 字符串
	Board      [][]string  `json:"board"`    // 10x9，空格为 ""
	ToMove     string      `json:"to_move"`
	LegalMoves []MoveDTO   `json:"legal_moves"`
	Status     game.Status `json:"status"`
	History    int         `json:"history"`
	Depth      int         `json:"depth"`
}

type DestinationsResponse struct {
	From         xiangqi.Pos   `json:"from"`
	Destinations []xiangqi.Pos `json:"destinations"`
}

type AiMoveResponse struct {
	StateResponse
	BestMove *MoveDTO `json:"best_move,omitempty"`
	Score    int      `json:"score"`
	Nodes    int64    `json:"nodes"`
	TimeMs   int64    `json:"time_ms"`
}

type UndoResponse struct {
	StateResponse
	Undone bool `json:"undone"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func movesToDTO(moves []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, 0, len(moves))
	for _, m := range moves {
		out = append(out, MoveDTO{From: m.From, To: m.To})
	}
	return out
}

func stateFromSnapshot(s game.Snapshot) StateResponse {
	return StateResponse{
		GameID:     s.ID,
		Position:   s.FEN,
		Board:      s.Board.Labels(),
		ToMove:     s.Active.String(),
		LegalMoves: movesToDTO(s.LegalMoves),
		Status:     s.Status,
		History:    s.HistoryLen,
		Depth:      s.Depth,
	}
}
