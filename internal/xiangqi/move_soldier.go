package xiangqi

// 兵：未过河只能前进一格；过河后可以左右一格，永远不能后退
func soldierDestinations(b *Board, from Pos, out []Pos) []Pos {
	pc := b.PieceAt(from)
	if pc == Empty {
		return out
	}
	side := pc.Color()
	out = addIfValid(b, pc, from.add(0, forward(side)), out)
	if crossedRiver(side, from.Y) {
		out = addIfValid(b, pc, from.add(-1, 0), out)
		out = addIfValid(b, pc, from.add(+1, 0), out)
	}
	return out
}
