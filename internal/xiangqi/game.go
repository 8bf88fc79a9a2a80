package xiangqi

import (
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("illegal move")

// Game = 棋盘 + 轮到谁走 + 悔棋栈
type Game struct {
	board  Board
	active Color
	first  Color

	recordHistory bool
	history       history
}

// NewGame 标准开局，first 先走
func NewGame(first Color) *Game {
	return NewGameFromBoard(InitialBoard(), first, first)
}

// NewGameFromBoard 从任意局面开始；first 决定哪一方走子前记录悔棋快照
func NewGameFromBoard(b Board, active, first Color) *Game {
	return &Game{
		board:         b,
		active:        active,
		first:         first,
		recordHistory: true,
	}
}

func (g *Game) Board() Board        { return g.board }
func (g *Game) ActiveColor() Color  { return g.active }
func (g *Game) FirstColor() Color   { return g.first }
func (g *Game) HistoryLen() int     { return g.history.len() }
func (g *Game) PieceAt(p Pos) Piece { return g.board.PieceAt(p) }

// Maximizing 红方为正分，红方走时取极大
func (g *Game) Maximizing() bool { return g.active == Red }

// ApplyMove 直接落子，不做合法性检查（调用方保证走法来自 LegalMoves）。
// 先手方走子前若开启记录，会把走子前的局面压栈。
func (g *Game) ApplyMove(m Move) {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		panic(fmt.Sprintf("xiangqi: move off board %v->%v", m.From, m.To))
	}
	pc := g.board.PieceAt(m.From)
	if pc == Empty {
		panic(fmt.Sprintf("xiangqi: no piece at %v", m.From))
	}
	if g.active == g.first && g.recordHistory {
		g.history.push(g.board)
	}
	g.board.set(m.To, pc)
	g.board.set(m.From, Empty)
	g.active = g.active.Opposite()
}

// Play 外部入口：校验后再落子
func (g *Game) Play(m Move) error {
	if !g.IsLegal(m) {
		return fmt.Errorf("%w: %v->%v", ErrIllegalMove, m.From, m.To)
	}
	g.ApplyMove(m)
	return nil
}

// Undo 恢复最近一次快照。注意：不恢复走子方。
func (g *Game) Undo() bool {
	b, ok := g.history.pop()
	if !ok {
		return false
	}
	g.board = b
	return true
}

// Clone 搜索用：棋盘深拷贝，不记录也不继承悔棋栈
func (g *Game) Clone() *Game {
	return &Game{
		board:  g.board,
		active: g.active,
		first:  g.first,
	}
}

// Winner 某一方的将被吃掉则对方获胜；都还在返回 NoColor
func (g *Game) Winner() Color {
	redAlive := g.board.HasGeneral(Red)
	blackAlive := g.board.HasGeneral(Black)
	switch {
	case redAlive && !blackAlive:
		return Red
	case blackAlive && !redAlive:
		return Black
	default:
		return NoColor
	}
}
