// Package search 通用的 minimax + alpha-beta 搜索，对具体棋类无感知。
package search

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// State 可搜索的局面。S 通常就是实现者自己的指针类型。
type State[S any, M any] interface {
	LegalMoves() []M
	Clone() S
	ApplyMove(M)
	// Maximizing 轮到走的一方是否取极大
	Maximizing() bool
}

// Evaluator 静态评估 + 终局判断
type Evaluator[S any] interface {
	Evaluate(S) int
	IsTerminal(S) bool
}

// 正负无穷；评估值必须严格落在 (-scoreInf, scoreInf) 之内
const scoreInf = math.MaxInt

// Result 一次搜索的结果
type Result[M any] struct {
	Move     M             // 最佳着法；Found 为 false 时是零值
	Found    bool          // 根节点是否有着法
	Value    int           // 搜索得到的分值（正：极大方好）
	Depth    int           // 搜索深度（ply）
	Nodes    int64         // 访问节点数
	TimeUsed time.Duration // 花费时间
}

type Option func(*options)

type options struct {
	pruning bool
	logger  *zap.Logger
}

// WithoutPruning 关掉 alpha-beta 剪枝，跑完整 minimax（只用于对照）
func WithoutPruning() Option {
	return func(o *options) { o.pruning = false }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// AI 固定深度的极大极小搜索
type AI[S State[S, M], M any] struct {
	state    S
	eval     Evaluator[S]
	maxDepth int
	opts     options

	nodes int64
}

// New maxDepth < 1 时按 1 处理
func New[S State[S, M], M any](initial S, eval Evaluator[S], maxDepth int, opts ...Option) *AI[S, M] {
	if maxDepth < 1 {
		maxDepth = 1
	}
	o := options{pruning: true, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &AI[S, M]{
		state:    initial,
		eval:     eval,
		maxDepth: maxDepth,
		opts:     o,
	}
}

func (a *AI[S, M]) MaxDepth() int { return a.maxDepth }

// Infer 为构造时传入的局面找最佳着法；没有着法时第二个返回值为 false
func (a *AI[S, M]) Infer() (M, bool) {
	res := a.Search(a.state)
	return res.Move, res.Found
}

// Search 在 state 的副本上搜索，不会修改 state
func (a *AI[S, M]) Search(state S) Result[M] {
	start := time.Now()
	a.nodes = 0

	mv, found, value := a.minimax(state, 0, state.Maximizing(), -scoreInf, scoreInf)

	res := Result[M]{
		Move:     mv,
		Found:    found,
		Value:    value,
		Depth:    a.maxDepth,
		Nodes:    a.nodes,
		TimeUsed: time.Since(start),
	}
	a.opts.logger.Debug("search done",
		zap.Any("move", res.Move),
		zap.Bool("found", res.Found),
		zap.Int("value", res.Value),
		zap.Int("depth", res.Depth),
		zap.Int64("nodes", res.Nodes),
		zap.Duration("elapsed", res.TimeUsed),
	)
	return res
}

// minimax 返回本层最佳着法、是否有着法、分值。
// 同分时保留第一个达到极值的着法（严格大于/小于才替换）；
// 所有着法都是 ∓inf 时取第一个着法。
func (a *AI[S, M]) minimax(state S, depth int, maximizing bool, alpha, beta int) (M, bool, int) {
	a.nodes++
	var best M

	if depth == a.maxDepth || a.eval.IsTerminal(state) {
		return best, false, a.eval.Evaluate(state)
	}

	// 没招的一方：极大层得 -inf，极小层得 +inf；根节点 found 为 false
	moves := state.LegalMoves()
	found := false
	if maximizing {
		bestVal := -scoreInf
		for _, mv := range moves {
			next := state.Clone()
			next.ApplyMove(mv)
			_, _, v := a.minimax(next, depth+1, false, alpha, beta)
			if v > bestVal || !found {
				bestVal = v
				best = mv
				found = true
			}
			alpha = max(alpha, bestVal)
			if a.opts.pruning && beta <= alpha {
				break
			}
		}
		return best, found, bestVal
	}

	bestVal := scoreInf
	for _, mv := range moves {
		next := state.Clone()
		next.ApplyMove(mv)
		_, _, v := a.minimax(next, depth+1, true, alpha, beta)
		if v < bestVal || !found {
			bestVal = v
			best = mv
			found = true
		}
		beta = min(beta, bestVal)
		if a.opts.pruning && beta <= alpha {
			break
		}
	}
	return best, found, bestVal
}
