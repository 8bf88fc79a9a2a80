package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"xiangqi/internal/engine"
	"xiangqi/internal/obslog"
	"xiangqi/internal/xiangqi"
)

type benchRow struct {
	ply         int
	fullNodes   int64
	prunedNodes int64
	fullTime    time.Duration
	prunedTime  time.Duration
	agree       bool
}

// runBenchmark 沿着剪枝搜索选出的走法推进，每一步对比完整 minimax 和 alpha-beta
func runBenchmark(e *engine.Engine, g *xiangqi.Game, depth, plies int) {
	log := obslog.L()
	var rows []benchRow
	for i := 0; i < plies; i++ {
		full := e.NewAI(g, engine.SearchConfig{MaxDepth: depth, NoPrune: true}).Search(g)
		pruned := e.NewAI(g, engine.SearchConfig{MaxDepth: depth}).Search(g)
		rows = append(rows, benchRow{
			ply:         i + 1,
			fullNodes:   full.Nodes,
			prunedNodes: pruned.Nodes,
			fullTime:    full.TimeUsed,
			prunedTime:  pruned.TimeUsed,
			agree:       full.Found == pruned.Found && full.Move == pruned.Move && full.Value == pruned.Value,
		})
		if !pruned.Found {
			break
		}
		g.ApplyMove(pruned.Move)
		if g.Winner() != xiangqi.NoColor {
			break
		}
	}

	fmt.Printf("\n=== depth %d ===\n", depth)
	fmt.Printf("%4s %12s %12s %8s %10s %10s %s\n", "ply", "full", "pruned", "ratio", "full_t", "pruned_t", "same")
	var sumFull, sumPruned int64
	mismatches := 0
	for _, r := range rows {
		ratio := 0.0
		if r.fullNodes > 0 {
			ratio = float64(r.prunedNodes) / float64(r.fullNodes)
		}
		fmt.Printf("%4d %12d %12d %8.3f %10v %10v %v\n",
			r.ply, r.fullNodes, r.prunedNodes, ratio,
			r.fullTime.Round(time.Microsecond), r.prunedTime.Round(time.Microsecond), r.agree)
		sumFull += r.fullNodes
		sumPruned += r.prunedNodes
		if !r.agree {
			mismatches++
		}
	}
	log.Info("benchmark done",
		zap.Int("plies", len(rows)),
		zap.Int64("full_nodes", sumFull),
		zap.Int64("pruned_nodes", sumPruned),
		zap.Int("mismatches", mismatches),
	)
}
