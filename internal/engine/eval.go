package engine

import (
	"xiangqi/internal/xiangqi"
)

// Material 纯子力估值：红方视角，score = 红方 - 黑方
type Material struct{}

func (Material) Evaluate(g *xiangqi.Game) int {
	return EvaluateBoard(g.Board())
}

// IsTerminal 任何一方的将/帅被吃掉即终局
func (Material) IsTerminal(g *xiangqi.Game) bool {
	b := g.Board()
	return !b.HasGeneral(xiangqi.Red) || !b.HasGeneral(xiangqi.Black)
}

func EvaluateBoard(b xiangqi.Board) int {
	score := 0
	for y := 0; y < xiangqi.Rows; y++ {
		for x := 0; x < xiangqi.Cols; x++ {
			score += b.Squares[y][x].Value()
		}
	}
	return score
}
