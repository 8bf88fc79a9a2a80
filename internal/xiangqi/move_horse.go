package xiangqi

// 马：日字，先看马腿，腿上有子则这一方向的两个落点都不能走
var horseLegs = [4]struct {
	Leg   [2]int
	Jumps [2][2]int
}{
	{Leg: [2]int{0, +1}, Jumps: [2][2]int{{-1, +2}, {+1, +2}}},
	{Leg: [2]int{0, -1}, Jumps: [2][2]int{{-1, -2}, {+1, -2}}},
	{Leg: [2]int{+1, 0}, Jumps: [2][2]int{{+2, +1}, {+2, -1}}},
	{Leg: [2]int{-1, 0}, Jumps: [2][2]int{{-2, +1}, {-2, -1}}},
}

func horseDestinations(b *Board, from Pos, out []Pos) []Pos {
	pc := b.PieceAt(from)
	for _, h := range horseLegs {
		if b.PieceAt(from.add(h.Leg[0], h.Leg[1])) != Empty {
			continue // 憋马腿
		}
		for _, j := range h.Jumps {
			out = addIfValid(b, pc, from.add(j[0], j[1]), out)
		}
	}
	return out
}
