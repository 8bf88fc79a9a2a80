package engine

import (
	"go.uber.org/zap"

	"xiangqi/internal/search"
	"xiangqi/internal/xiangqi"
)

const (
	DefaultDepth = 4
	// 对局可请求的深度上限
	MaxDepth = 6
)

// AI 象棋专用的搜索实例
type AI = search.AI[*xiangqi.Game, xiangqi.Move]

// SearchResult 象棋专用的搜索结果
type SearchResult = search.Result[xiangqi.Move]

// 搜索配置
type SearchConfig struct {
	MaxDepth int  // 最大搜索深度（ply），<=0 用 DefaultDepth
	NoPrune  bool // 关闭 alpha-beta，只用于对照
}

type Engine struct {
	log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

// NewAI 绑定一个对局；Infer 时在副本上搜索，不改动 g
func (e *Engine) NewAI(g *xiangqi.Game, cfg SearchConfig) *AI {
	depth := cfg.MaxDepth
	if depth <= 0 {
		depth = DefaultDepth
	}
	opts := []search.Option{search.WithLogger(e.log)}
	if cfg.NoPrune {
		opts = append(opts, search.WithoutPruning())
	}
	return search.New[*xiangqi.Game, xiangqi.Move](g, Material{}, depth, opts...)
}

// Search 只思考不落子
func (e *Engine) Search(g *xiangqi.Game, cfg SearchConfig) SearchResult {
	res := e.NewAI(g, cfg).Search(g)
	e.log.Info("ai search",
		zap.String("side", g.ActiveColor().String()),
		zap.Bool("found", res.Found),
		zap.Any("move", res.Move),
		zap.Int("score", res.Value),
		zap.Int("depth", res.Depth),
		zap.Int64("nodes", res.Nodes),
		zap.Duration("elapsed", res.TimeUsed),
	)
	return res
}
