package main

import (
	"flag"
	"fmt"
	"os"

	"xiangqi/internal/xiangqi"
)

// perft 统计 depth 层内的叶子数，用来核对走法生成
func perft(g *xiangqi.Game, depth int) int64 {
	if depth == 0 {
		return 1
	}
	if g.Winner() != xiangqi.NoColor {
		return 1
	}
	var n int64
	for _, m := range g.LegalMoves() {
		c := g.Clone()
		c.ApplyMove(m)
		n += perft(c, depth-1)
	}
	return n
}

func main() {
	fen := flag.String("fen", "", "position to inspect, default is the opening")
	depth := flag.Int("perft", 0, "run perft to this depth")
	flag.Parse()

	g := xiangqi.NewGame(xiangqi.Red)
	if *fen != "" {
		var err error
		if g, err = xiangqi.Decode(*fen, xiangqi.Red); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	b := g.Board()
	fmt.Print(b.String())
	fmt.Println("FEN:", g.Encode())
	fmt.Println("Legal moves:", len(g.LegalMoves()))
	for d := 1; d <= *depth; d++ {
		fmt.Printf("perft(%d) = %d\n", d, perft(g, d))
	}
}
