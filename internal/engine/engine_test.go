package engine

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"xiangqi/internal/xiangqi"
)

func place(pieces map[xiangqi.Pos]xiangqi.Piece) xiangqi.Board {
	var b xiangqi.Board
	for p, pc := range pieces {
		b.Squares[p.Y][p.X] = pc
	}
	return b
}

func TestEvaluateInitialIsZero(t *testing.T) {
	g := xiangqi.NewGame(xiangqi.Red)
	if got := (Material{}).Evaluate(g); got != 0 {
		t.Fatalf("initial evaluation: got=%d want=0", got)
	}
}

func TestEvaluateMaterialSum(t *testing.T) {
	b := place(map[xiangqi.Pos]xiangqi.Piece{
		{X: 4, Y: 9}: xiangqi.RedGeneral,
		{X: 4, Y: 0}: xiangqi.BlackGeneral,
		{X: 0, Y: 9}: xiangqi.RedChariot,
		{X: 1, Y: 2}: xiangqi.BlackCannon,
		{X: 2, Y: 3}: xiangqi.BlackSoldier,
	})
	g := xiangqi.NewGameFromBoard(b, xiangqi.Red, xiangqi.Red)
	want := xiangqi.ChariotValue - xiangqi.CannonValue - xiangqi.SoldierValue
	if got := (Material{}).Evaluate(g); got != want {
		t.Fatalf("evaluate: got=%d want=%d", got, want)
	}
}

func TestIsTerminal(t *testing.T) {
	if (Material{}).IsTerminal(xiangqi.NewGame(xiangqi.Red)) {
		t.Fatalf("initial board must not be terminal")
	}
	cases := []struct {
		name   string
		pieces map[xiangqi.Pos]xiangqi.Piece
		want   bool
	}{
		{"both generals", map[xiangqi.Pos]xiangqi.Piece{{X: 4, Y: 9}: xiangqi.RedGeneral, {X: 3, Y: 0}: xiangqi.BlackGeneral}, false},
		{"red general missing", map[xiangqi.Pos]xiangqi.Piece{{X: 3, Y: 0}: xiangqi.BlackGeneral, {X: 0, Y: 0}: xiangqi.RedChariot}, true},
		{"black general missing", map[xiangqi.Pos]xiangqi.Piece{{X: 4, Y: 9}: xiangqi.RedGeneral}, true},
		{"both missing", map[xiangqi.Pos]xiangqi.Piece{{X: 0, Y: 0}: xiangqi.RedChariot}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := xiangqi.NewGameFromBoard(place(tc.pieces), xiangqi.Red, xiangqi.Red)
			if got := (Material{}).IsTerminal(g); got != tc.want {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
		})
	}
}

// 红车一步能吃黑车（无保护）或黑卒，深度 1 必须吃车
func TestDepthOneTakesBestCapture(t *testing.T) {
	b := place(map[xiangqi.Pos]xiangqi.Piece{
		{X: 4, Y: 9}: xiangqi.RedGeneral,
		{X: 3, Y: 1}: xiangqi.BlackGeneral,
		{X: 0, Y: 5}: xiangqi.RedChariot,
		{X: 0, Y: 0}: xiangqi.BlackChariot,
		{X: 8, Y: 5}: xiangqi.BlackSoldier,
	})
	g := xiangqi.NewGameFromBoard(b, xiangqi.Red, xiangqi.Red)

	ai := NewEngine(nil).NewAI(g, SearchConfig{MaxDepth: 1})
	mv, ok := ai.Infer()
	want := xiangqi.Move{From: xiangqi.Pos{X: 0, Y: 5}, To: xiangqi.Pos{X: 0, Y: 0}}
	if !ok || mv != want {
		t.Fatalf("best move: got=%+v ok=%v want=%+v", mv, ok, want)
	}
}

// 吃炮会被黑车反吃：深度 1 贪吃，深度 2 改吃卒
func TestDepthTwoAvoidsDefendedPiece(t *testing.T) {
	b := place(map[xiangqi.Pos]xiangqi.Piece{
		{X: 4, Y: 9}: xiangqi.RedGeneral,
		{X: 3, Y: 1}: xiangqi.BlackGeneral,
		{X: 0, Y: 5}: xiangqi.RedChariot,
		{X: 0, Y: 2}: xiangqi.BlackCannon,
		{X: 1, Y: 2}: xiangqi.BlackChariot,
		{X: 8, Y: 5}: xiangqi.BlackSoldier,
	})
	g := xiangqi.NewGameFromBoard(b, xiangqi.Red, xiangqi.Red)
	e := NewEngine(nil)

	greedy := e.Search(g, SearchConfig{MaxDepth: 1})
	if greedy.Move.To != (xiangqi.Pos{X: 0, Y: 2}) {
		t.Fatalf("depth 1 should grab the cannon: %+v", greedy.Move)
	}

	careful := e.Search(g, SearchConfig{MaxDepth: 2})
	want := xiangqi.Move{From: xiangqi.Pos{X: 0, Y: 5}, To: xiangqi.Pos{X: 8, Y: 5}}
	if careful.Move != want {
		t.Fatalf("depth 2: got=%+v want=%+v", careful.Move, want)
	}
	base := EvaluateBoard(b)
	if careful.Value != base+xiangqi.SoldierValue {
		t.Fatalf("depth 2 value: got=%d want=%d", careful.Value, base+xiangqi.SoldierValue)
	}
}

func TestBlackMinimizes(t *testing.T) {
	b := place(map[xiangqi.Pos]xiangqi.Piece{
		{X: 4, Y: 9}: xiangqi.RedGeneral,
		{X: 3, Y: 0}: xiangqi.BlackGeneral,
		{X: 8, Y: 0}: xiangqi.BlackChariot,
		{X: 8, Y: 6}: xiangqi.RedHorse,
	})
	g := xiangqi.NewGameFromBoard(b, xiangqi.Black, xiangqi.Red)
	res := NewEngine(nil).Search(g, SearchConfig{MaxDepth: 1})
	want := xiangqi.Move{From: xiangqi.Pos{X: 8, Y: 0}, To: xiangqi.Pos{X: 8, Y: 6}}
	if !res.Found || res.Move != want {
		t.Fatalf("black should take the horse: %+v", res)
	}
}

func TestPruningMatchesFullMinimaxOnBoard(t *testing.T) {
	e := NewEngine(nil)
	g := xiangqi.NewGame(xiangqi.Red)
	for ply := 0; ply < 6; ply++ {
		for _, depth := range []int{1, 2, 3} {
			p := e.Search(g, SearchConfig{MaxDepth: depth})
			f := e.Search(g, SearchConfig{MaxDepth: depth, NoPrune: true})
			if p.Move != f.Move || p.Value != f.Value {
				t.Fatalf("ply %d depth %d: pruned=%+v/%d full=%+v/%d", ply, depth, p.Move, p.Value, f.Move, f.Value)
			}
			if p.Nodes > f.Nodes {
				t.Fatalf("ply %d depth %d: pruned visited %d > %d", ply, depth, p.Nodes, f.Nodes)
			}
		}
		moves := g.LegalMoves()
		g.ApplyMove(moves[(ply*11)%len(moves)])
	}
}

func TestInferLeavesGameUntouched(t *testing.T) {
	g := xiangqi.NewGame(xiangqi.Red)
	before := g.Board()
	ai := NewEngine(nil).NewAI(g, SearchConfig{MaxDepth: 2})
	if _, ok := ai.Infer(); !ok {
		t.Fatalf("opening must have a move")
	}
	if g.Board() != before || g.ActiveColor() != xiangqi.Red || g.HistoryLen() != 0 {
		t.Fatalf("infer mutated the live game")
	}
}

func TestCapturedGeneralEndsSearch(t *testing.T) {
	// 黑将已被吃：根节点即终局，没有着法可报
	b := place(map[xiangqi.Pos]xiangqi.Piece{
		{X: 4, Y: 9}: xiangqi.RedGeneral,
		{X: 0, Y: 5}: xiangqi.RedChariot,
		{X: 0, Y: 0}: xiangqi.BlackChariot,
	})
	g := xiangqi.NewGameFromBoard(b, xiangqi.Red, xiangqi.Red)
	res := NewEngine(nil).Search(g, SearchConfig{MaxDepth: 3})
	if res.Found {
		t.Fatalf("terminal root must not yield a move: %+v", res.Move)
	}
	if res.Value != EvaluateBoard(b) {
		t.Fatalf("terminal value: got=%d want=%d", res.Value, EvaluateBoard(b))
	}
}

func TestSearchLogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := NewEngine(zap.New(core))

	res := e.Search(xiangqi.NewGame(xiangqi.Red), SearchConfig{MaxDepth: 1})
	if !res.Found {
		t.Fatalf("expected a move from the opening")
	}
	entries := logs.FilterMessage("ai search").All()
	if len(entries) != 1 {
		t.Fatalf("ai search entries: %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["side"] != "red" || fields["nodes"] != res.Nodes {
		t.Fatalf("log fields: %v", fields)
	}
}

func TestOpponentWithoutMovesScoresInfinity(t *testing.T) {
	// 黑将被自己的四个士堵死在九宫角上
	b := place(map[xiangqi.Pos]xiangqi.Piece{
		{X: 3, Y: 0}: xiangqi.BlackGeneral,
		{X: 4, Y: 0}: xiangqi.BlackGuard,
		{X: 3, Y: 1}: xiangqi.BlackGuard,
		{X: 4, Y: 2}: xiangqi.BlackGuard,
		{X: 5, Y: 1}: xiangqi.BlackGuard,
		{X: 2, Y: 0}: xiangqi.RedChariot,
		{X: 4, Y: 9}: xiangqi.RedGeneral,
	})
	quiet := xiangqi.Move{From: xiangqi.Pos{X: 2, Y: 0}, To: xiangqi.Pos{X: 2, Y: 1}}

	after := xiangqi.NewGameFromBoard(b, xiangqi.Red, xiangqi.Red)
	after.ApplyMove(quiet)
	if n := len(after.LegalMoves()); n != 0 {
		t.Fatalf("black should be stuck after the quiet move, has %d moves", n)
	}

	e := NewEngine(nil)
	for _, noPrune := range []bool{false, true} {
		g := xiangqi.NewGameFromBoard(b, xiangqi.Red, xiangqi.Red)
		res := e.Search(g, SearchConfig{MaxDepth: 2, NoPrune: noPrune})
		if !res.Found || res.Move != quiet || res.Value != math.MaxInt {
			t.Fatalf("noPrune=%v: got %+v value %d, want %v at +inf", noPrune, res.Move, res.Value, quiet)
		}
	}

	// 黑方视角：红方无着记 -inf，黑方选到它
	b2 := place(map[xiangqi.Pos]xiangqi.Piece{
		{X: 3, Y: 9}: xiangqi.RedGeneral,
		{X: 4, Y: 9}: xiangqi.RedGuard,
		{X: 3, Y: 8}: xiangqi.RedGuard,
		{X: 4, Y: 7}: xiangqi.RedGuard,
		{X: 5, Y: 8}: xiangqi.RedGuard,
		{X: 2, Y: 9}: xiangqi.BlackChariot,
		{X: 4, Y: 0}: xiangqi.BlackGeneral,
	})
	g := xiangqi.NewGameFromBoard(b2, xiangqi.Black, xiangqi.Red)
	res := e.Search(g, SearchConfig{MaxDepth: 2})
	if !res.Found || res.Value != -math.MaxInt {
		t.Fatalf("black side: got %+v value %d, want -inf", res.Move, res.Value)
	}
}
