package xiangqi

// history 悔棋用的局面快照栈，只做 push/pop
type history struct {
	snapshots []Board
}

func (h *history) push(b Board) {
	h.snapshots = append(h.snapshots, b)
}

func (h *history) pop() (Board, bool) {
	n := len(h.snapshots)
	if n == 0 {
		return Board{}, false
	}
	b := h.snapshots[n-1]
	h.snapshots[n-1] = Board{}
	h.snapshots = h.snapshots[:n-1]
	return b, true
}

func (h *history) len() int { return len(h.snapshots) }
