package xiangqi

import (
	"errors"
	"strings"
	"unicode"
)

var ErrInvalidFEN = errors.New("invalid FEN")

var letterToKind = map[rune]Kind{
	'r': Chariot,
	'n': Horse,
	'b': Elephant,
	'a': Guard,
	'k': General,
	'c': Cannon,
	'p': Soldier,
}

var kindToLetter = [...]rune{
	Chariot:  'r',
	Horse:    'n',
	Elephant: 'b',
	Guard:    'a',
	General:  'k',
	Cannon:   'c',
	Soldier:  'p',
}

func pieceToChar(p Piece) rune {
	if p == Empty {
		return '.'
	}
	ch := kindToLetter[p.Kind()]
	if p.Color() == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

// Encode FEN-like：10 行用“/”隔开，空位用数字压缩；空格后 w/b 表示走子方
func (b *Board) Encode(active Color) string {
	var sb strings.Builder
	for y := 0; y < Rows; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < Cols; x++ {
			pc := b.Squares[y][x]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if active == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

func (g *Game) Encode() string {
	return g.board.Encode(g.active)
}

// DecodeBoard 解析 FEN-like 字符串，返回棋盘和走子方
func DecodeBoard(fen string) (Board, Color, error) {
	var b Board
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return b, NoColor, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return b, NoColor, ErrInvalidFEN
	}
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			if x >= Cols {
				return b, NoColor, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				x += int(ch - '0')
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return b, NoColor, ErrInvalidFEN
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			b.Squares[y][x] = MakePiece(side, kind)
			x++
		}
		if x != Cols {
			return b, NoColor, ErrInvalidFEN
		}
	}
	if !plausible(&b) {
		return b, NoColor, ErrInvalidFEN
	}
	var active Color
	switch parts[1] {
	case "w", "r":
		active = Red
	case "b":
		active = Black
	default:
		return b, NoColor, ErrInvalidFEN
	}
	return b, active, nil
}

// plausible 每方至多一个将帅、至多 16 枚棋子
func plausible(b *Board) bool {
	for _, c := range [...]Color{Red, Black} {
		if b.Count(c) > 16 {
			return false
		}
	}
	generals := [2]int{}
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			pc := b.Squares[y][x]
			if pc.Kind() == General {
				generals[pc.Color()]++
			}
		}
	}
	return generals[Red] <= 1 && generals[Black] <= 1
}

// Decode 从 FEN 建立对局，先手方取 first
func Decode(fen string, first Color) (*Game, error) {
	b, active, err := DecodeBoard(fen)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(b, active, first), nil
}
