package xiangqi

type Color int8

const (
	NoColor Color = -1
	Red     Color = 0
	Black   Color = 1
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opposite 返回对方颜色；NoColor 保持不变
func (c Color) Opposite() Color {
	switch c {
	case Red:
		return Black
	case Black:
		return Red
	default:
		return NoColor
	}
}

// ParseColor 接受 "red"/"r"/"w" 与 "black"/"b"
func ParseColor(s string) (Color, bool) {
	switch s {
	case "red", "r", "w", "RED", "Red":
		return Red, true
	case "black", "b", "BLACK", "Black":
		return Black, true
	default:
		return NoColor, false
	}
}

type Kind int8

const (
	KindNone Kind = iota
	Soldier       // 兵 / 卒
	Cannon        // 炮
	Chariot       // 车
	Horse         // 马
	Elephant      // 相 / 象
	Guard         // 仕 / 士
	General       // 帅 / 将
)

func (k Kind) String() string {
	switch k {
	case Soldier:
		return "soldier"
	case Cannon:
		return "cannon"
	case Chariot:
		return "chariot"
	case Horse:
		return "horse"
	case Elephant:
		return "elephant"
	case Guard:
		return "guard"
	case General:
		return "general"
	default:
		return "none"
	}
}

// 子力价值（红方视角为正）
const (
	SoldierValue  = 10
	CannonValue   = 80
	ChariotValue  = 90
	HorseValue    = 60
	ElephantValue = 20
	GuardValue    = 40
	GeneralValue  = 999
)

var kindValue = [...]int{
	KindNone: 0,
	Soldier:  SoldierValue,
	Cannon:   CannonValue,
	Chariot:  ChariotValue,
	Horse:    HorseValue,
	Elephant: ElephantValue,
	Guard:    GuardValue,
	General:  GeneralValue,
}

var kindLabel = [2][8]string{
	Red:   {"", "兵", "炮", "車", "馬", "相", "仕", "師"},
	Black: {"", "卒", "砲", "車", "馬", "象", "士", "將"},
}

// Piece 0=空；>0 红；<0 黑；abs=Kind
type Piece int8

const Empty Piece = 0

const (
	RedSoldier  = Piece(Soldier)
	RedCannon   = Piece(Cannon)
	RedChariot  = Piece(Chariot)
	RedHorse    = Piece(Horse)
	RedElephant = Piece(Elephant)
	RedGuard    = Piece(Guard)
	RedGeneral  = Piece(General)

	BlackSoldier  = -Piece(Soldier)
	BlackCannon   = -Piece(Cannon)
	BlackChariot  = -Piece(Chariot)
	BlackHorse    = -Piece(Horse)
	BlackElephant = -Piece(Elephant)
	BlackGuard    = -Piece(Guard)
	BlackGeneral  = -Piece(General)
)

// Pieces 双方各七种棋子，按 Kind 顺序
var Pieces = [2][7]Piece{
	Red:   {RedSoldier, RedCannon, RedChariot, RedHorse, RedElephant, RedGuard, RedGeneral},
	Black: {BlackSoldier, BlackCannon, BlackChariot, BlackHorse, BlackElephant, BlackGuard, BlackGeneral},
}

func MakePiece(c Color, k Kind) Piece {
	if k <= KindNone || k > General || c == NoColor {
		return Empty
	}
	if c == Red {
		return Piece(k)
	}
	return -Piece(k)
}

func (p Piece) Kind() Kind {
	if p < 0 {
		return Kind(-p)
	}
	return Kind(p)
}

func (p Piece) Color() Color {
	if p == Empty {
		return NoColor
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) IsEmpty() bool { return p == Empty }

// Value 带符号的子力价值：红正黑负
func (p Piece) Value() int {
	v := kindValue[p.Kind()]
	if p < 0 {
		return -v
	}
	return v
}

func (p Piece) Label() string {
	if p == Empty {
		return ""
	}
	return kindLabel[p.Color()][p.Kind()]
}

func (p Piece) String() string {
	if p == Empty {
		return "empty"
	}
	return p.Color().String() + " " + p.Kind().String()
}
