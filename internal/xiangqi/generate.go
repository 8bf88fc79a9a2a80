package xiangqi

// Destinations 指定格子上棋子的所有可落点（伪合法：不检查送将）
func (b *Board) Destinations(from Pos) []Pos {
	pc := b.PieceAt(from)
	if pc == Empty {
		return nil
	}
	var out []Pos
	switch pc.Kind() {
	case Soldier:
		out = soldierDestinations(b, from, out)
	case Cannon:
		out = cannonDestinations(b, from, out)
	case Chariot:
		out = chariotDestinations(b, from, out)
	case Horse:
		out = horseDestinations(b, from, out)
	case Elephant:
		out = elephantDestinations(b, from, out)
	case Guard:
		out = guardDestinations(b, from, out)
	case General:
		out = generalDestinations(b, from, out)
	}
	return out
}

// MovesFor 按行优先扫描，生成 side 一方的全部走法
func (b *Board) MovesFor(side Color) []Move {
	var moves []Move
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.Squares[y][x].Color() != side {
				continue
			}
			from := Pos{X: x, Y: y}
			for _, to := range b.Destinations(from) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// Destinations 供 UI 提示落点
func (g *Game) Destinations(from Pos) []Pos {
	return g.board.Destinations(from)
}

// LegalMoves 当前走子方的全部走法
func (g *Game) LegalMoves() []Move {
	return g.board.MovesFor(g.active)
}

// IsLegal 走法是否在当前走法集合里
func (g *Game) IsLegal(m Move) bool {
	if g.board.PieceAt(m.From).Color() != g.active {
		return false
	}
	for _, to := range g.board.Destinations(m.From) {
		if to == m.To {
			return true
		}
	}
	return false
}
