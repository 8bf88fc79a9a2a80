package xiangqi

import (
	"strings"
)

const (
	Rows = 10
	Cols = 9

	MaxX = Cols - 1
	MaxY = Rows - 1

	// 楚河汉界：红方 y<RiverRed 即过河，黑方 y>RiverBlack 即过河
	RiverRed   = 5
	RiverBlack = 4
)

// Pos 棋盘坐标，X 为列(0..8)，Y 为行(0..9)，第 0 行是黑方底线
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Pos) OnBoard() bool {
	return p.X >= 0 && p.X <= MaxX && p.Y >= 0 && p.Y <= MaxY
}

func (p Pos) add(dx, dy int) Pos { return Pos{X: p.X + dx, Y: p.Y + dy} }

type Move struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

// Board 数组值类型：赋值即深拷贝
type Board struct {
	Squares [Rows][Cols]Piece
}

// PieceAt 越界返回 Empty
func (b *Board) PieceAt(p Pos) Piece {
	if !p.OnBoard() {
		return Empty
	}
	return b.Squares[p.Y][p.X]
}

func (b *Board) set(p Pos, pc Piece) {
	b.Squares[p.Y][p.X] = pc
}

// HasGeneral 某一方的将/帅是否还在棋盘上
func (b *Board) HasGeneral(c Color) bool {
	want := MakePiece(c, General)
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.Squares[y][x] == want {
				return true
			}
		}
	}
	return false
}

// Count 统计某一方的棋子数
func (b *Board) Count(c Color) int {
	n := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.Squares[y][x].Color() == c {
				n++
			}
		}
	}
	return n
}

// Labels 10x9 的棋子字形，空格为 ""
func (b *Board) Labels() [][]string {
	out := make([][]string, Rows)
	for y := 0; y < Rows; y++ {
		out[y] = make([]string, Cols)
		for x := 0; x < Cols; x++ {
			out[y][x] = b.Squares[y][x].Label()
		}
	}
	return out
}

// String 控制台打印用
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   0 1 2 3 4 5 6 7 8\n")
	for y := 0; y < Rows; y++ {
		sb.WriteByte(byte('0' + y))
		sb.WriteString(" ")
		for x := 0; x < Cols; x++ {
			pc := b.Squares[y][x]
			if pc == Empty {
				sb.WriteString("..")
			} else {
				sb.WriteString(pc.Label())
			}
		}
		sb.WriteByte('\n')
		if y == RiverBlack {
			sb.WriteString("  ~~~~~~~~~~~~~~~~~~\n")
		}
	}
	return sb.String()
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func forward(c Color) int {
	if c == Red {
		return -1
	}
	if c == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func crossedRiver(c Color, y int) bool {
	if c == Red {
		return y < RiverRed
	}
	if c == Black {
		return y > RiverBlack
	}
	return false
}

var initialBoard = Board{Squares: [Rows][Cols]Piece{
	{BlackChariot, BlackHorse, BlackElephant, BlackGuard, BlackGeneral, BlackGuard, BlackElephant, BlackHorse, BlackChariot},
	{},
	{Empty, BlackCannon, Empty, Empty, Empty, Empty, Empty, BlackCannon, Empty},
	{BlackSoldier, Empty, BlackSoldier, Empty, BlackSoldier, Empty, BlackSoldier, Empty, BlackSoldier},
	{},
	{},
	{RedSoldier, Empty, RedSoldier, Empty, RedSoldier, Empty, RedSoldier, Empty, RedSoldier},
	{Empty, RedCannon, Empty, Empty, Empty, Empty, Empty, RedCannon, Empty},
	{},
	{RedChariot, RedHorse, RedElephant, RedGuard, RedGeneral, RedGuard, RedElephant, RedHorse, RedChariot},
}}

// InitialBoard 标准开局
func InitialBoard() Board {
	return initialBoard
}
