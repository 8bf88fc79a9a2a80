package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"xiangqi/internal/engine"
	"xiangqi/internal/obslog"
	"xiangqi/internal/xiangqi"
)

func main() {
	redDepth := flag.Int("red-depth", 3, "search depth for red")
	blackDepth := flag.Int("black-depth", 3, "search depth for black")
	maxMoves := flag.Int("maxmoves", 100, "max plies to play")
	fen := flag.String("fen", "", "start position (FEN-like), default is the opening")
	quiet := flag.Bool("quiet", false, "do not print the board after each ply")
	bench := flag.Bool("bench", false, "compare pruned and full search node counts instead of playing")
	benchDepth := flag.Int("bench-depth", 3, "depth used by -bench")
	logLevel := flag.String("log-level", "info", "debug / info / warn / error")
	flag.Parse()

	if err := obslog.Init(*logLevel, "console"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer obslog.Sync()
	log := obslog.L()

	g := xiangqi.NewGame(xiangqi.Red)
	if *fen != "" {
		var err error
		g, err = xiangqi.Decode(*fen, xiangqi.Red)
		if err != nil {
			log.Fatal("bad fen", zap.Error(err))
		}
	}

	e := engine.NewEngine(log.Named("engine"))
	if *bench {
		runBenchmark(e, g, *benchDepth, *maxMoves)
		return
	}

	depthOf := map[xiangqi.Color]int{xiangqi.Red: *redDepth, xiangqi.Black: *blackDepth}
	winner := playGame(e, g, depthOf, *maxMoves, !*quiet)
	log.Info("selfplay finished", zap.String("winner", winner.String()), zap.String("final", g.Encode()))
}

// playGame 双方 AI 对弈，直到将帅被吃、无着法或达到步数上限
func playGame(e *engine.Engine, g *xiangqi.Game, depthOf map[xiangqi.Color]int, maxMoves int, verbose bool) xiangqi.Color {
	log := obslog.L()
	for i := 0; i < maxMoves; i++ {
		side := g.ActiveColor()
		res := e.Search(g, engine.SearchConfig{MaxDepth: depthOf[side]})
		if !res.Found {
			log.Info("game over: no moves", zap.Int("ply", i+1), zap.String("side", side.String()))
			return xiangqi.NoColor
		}

		nps := int64(0)
		if sec := res.TimeUsed.Seconds(); sec > 0 {
			nps = int64(float64(res.Nodes) / sec)
		}
		fmt.Printf("%3d %-5s %v -> %v  score=%d nodes=%d nps=%d\n",
			i+1, side, res.Move.From, res.Move.To, res.Value, res.Nodes, nps)

		g.ApplyMove(res.Move)
		if verbose {
			b := g.Board()
			fmt.Print(b.String())
		}

		if w := g.Winner(); w != xiangqi.NoColor {
			log.Info("game over: general captured", zap.Int("ply", i+1), zap.String("winner", w.String()))
			return w
		}
	}
	return xiangqi.NoColor
}
