package game

import (
	"sync"
	"time"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusRedWins   Status = "red_wins"
	StatusBlackWins Status = "black_wins"
	StatusNoMoves   Status = "no_moves"
	// 双方将帅都不在，只可能来自外部局面
	StatusGameOver Status = "game_over"
)

// Session 一局人机对弈。live Game 只在 mu 保护下读写，搜索期间也持锁。
type Session struct {
	ID        string
	Depth     int
	CreatedAt time.Time

	mu        sync.Mutex
	game      *xiangqi.Game
	updatedAt time.Time
	lastAI    *engine.SearchResult
}

// Snapshot 对外只读视图
type Snapshot struct {
	ID         string
	FEN        string
	Board      xiangqi.Board
	Active     xiangqi.Color
	Status     Status
	LegalMoves []xiangqi.Move
	HistoryLen int
	Depth      int
	UpdatedAt  time.Time
	LastAI     *engine.SearchResult
}

func statusOf(g *xiangqi.Game) Status {
	if (engine.Material{}).IsTerminal(g) {
		switch g.Winner() {
		case xiangqi.Red:
			return StatusRedWins
		case xiangqi.Black:
			return StatusBlackWins
		}
		return StatusGameOver
	}
	if len(g.LegalMoves()) == 0 {
		return StatusNoMoves
	}
	return StatusOngoing
}

// snapshotLocked 调用方必须持有 s.mu
func (s *Session) snapshotLocked() Snapshot {
	st := statusOf(s.game)
	var legal []xiangqi.Move
	if st == StatusOngoing {
		legal = s.game.LegalMoves()
	}
	return Snapshot{
		ID:         s.ID,
		FEN:        s.game.Encode(),
		Board:      s.game.Board(),
		Active:     s.game.ActiveColor(),
		Status:     st,
		LegalMoves: legal,
		HistoryLen: s.game.HistoryLen(),
		Depth:      s.Depth,
		UpdatedAt:  s.updatedAt,
		LastAI:     s.lastAI,
	}
}
