package xiangqi

// 上、下、左、右
var rayDirs = [4][2]int{
	{0, -1},
	{0, +1},
	{-1, 0},
	{+1, 0},
}

// validDestination 边界 + 九宫/本方半场限制 + 不能落在己方棋子上
func validDestination(b *Board, pc Piece, to Pos) bool {
	minX, minY, maxX, maxY := 0, 0, MaxX, MaxY
	c := pc.Color()
	switch pc.Kind() {
	case Guard, General:
		minX, maxX = 3, 5
		if c == Red {
			minY = 7
		} else {
			maxY = 2
		}
	case Elephant:
		if c == Red {
			minY = RiverRed
		} else {
			maxY = RiverBlack
		}
	}
	if to.X < minX || to.X > maxX || to.Y < minY || to.Y > maxY {
		return false
	}
	return b.PieceAt(to).Color() != c
}

func addIfValid(b *Board, pc Piece, to Pos, out []Pos) []Pos {
	if validDestination(b, pc, to) {
		out = append(out, to)
	}
	return out
}

// 车：横竖直走，遇子即停，异色可吃
func chariotDestinations(b *Board, from Pos, out []Pos) []Pos {
	side := b.PieceAt(from).Color()
	for _, d := range rayDirs {
		for to := from.add(d[0], d[1]); to.OnBoard(); to = to.add(d[0], d[1]) {
			pc := b.PieceAt(to)
			if pc == Empty {
				out = append(out, to)
				continue
			}
			if pc.Color() != side {
				out = append(out, to)
			}
			break
		}
	}
	return out
}

// 炮：炮架之前走空格，隔一子吃异色，吃不吃都在第二个子处停
func cannonDestinations(b *Board, from Pos, out []Pos) []Pos {
	side := b.PieceAt(from).Color()
	for _, d := range rayDirs {
		screened := false
		for to := from.add(d[0], d[1]); to.OnBoard(); to = to.add(d[0], d[1]) {
			pc := b.PieceAt(to)
			if pc == Empty {
				if !screened {
					out = append(out, to)
				}
				continue
			}
			if !screened {
				screened = true
				continue
			}
			if pc.Color() != side {
				out = append(out, to)
			}
			break
		}
	}
	return out
}

// 相：田字，不过河；这里不检查塞象眼
func elephantDestinations(b *Board, from Pos, out []Pos) []Pos {
	pc := b.PieceAt(from)
	out = addIfValid(b, pc, from.add(-2, +2), out)
	out = addIfValid(b, pc, from.add(-2, -2), out)
	out = addIfValid(b, pc, from.add(+2, +2), out)
	out = addIfValid(b, pc, from.add(+2, -2), out)
	return out
}

// 士：九宫内斜走一格
func guardDestinations(b *Board, from Pos, out []Pos) []Pos {
	pc := b.PieceAt(from)
	out = addIfValid(b, pc, from.add(-1, +1), out)
	out = addIfValid(b, pc, from.add(-1, -1), out)
	out = addIfValid(b, pc, from.add(+1, +1), out)
	out = addIfValid(b, pc, from.add(+1, -1), out)
	return out
}

// 将：九宫内上下左右一格，外加飞将吃对方将
func generalDestinations(b *Board, from Pos, out []Pos) []Pos {
	pc := b.PieceAt(from)
	out = addIfValid(b, pc, from.add(+1, 0), out)
	out = addIfValid(b, pc, from.add(-1, 0), out)
	out = addIfValid(b, pc, from.add(0, -1), out)
	out = addIfValid(b, pc, from.add(0, +1), out)

	// 整列只有两个子，且另一个是将：中间必然无子，可以直接飞过去
	occupied := 0
	other := -1
	for y := 0; y < Rows; y++ {
		cell := b.Squares[y][from.X]
		if cell == Empty {
			continue
		}
		occupied++
		if cell.Kind() == General && y != from.Y {
			other = y
		}
	}
	if occupied == 2 && other != -1 {
		out = append(out, Pos{X: from.X, Y: other})
	}
	return out
}
