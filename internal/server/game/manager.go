package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

var (
	ErrNotFound = errors.New("game not found")
	ErrGameOver = errors.New("game is over")
	ErrBadDepth = errors.New("search depth out of range")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session

	engine       *engine.Engine
	defaultDepth int
	maxDepth     int
	log          *zap.Logger
}

// NewManager maxDepth<=0 用 engine.MaxDepth；defaultDepth 会被压到 maxDepth 以内
func NewManager(e *engine.Engine, defaultDepth, maxDepth int, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	if maxDepth <= 0 {
		maxDepth = engine.MaxDepth
	}
	if defaultDepth <= 0 {
		defaultDepth = engine.DefaultDepth
	}
	defaultDepth = min(defaultDepth, maxDepth)
	return &Manager{
		games:        make(map[string]*Session),
		engine:       e,
		defaultDepth: defaultDepth,
		maxDepth:     maxDepth,
		log:          log,
	}
}

func (m *Manager) MaxDepth() int { return m.maxDepth }

// NewSession 标准开局；depth<=0 用默认深度，超过上限返回 ErrBadDepth
func (m *Manager) NewSession(first xiangqi.Color, depth int) (Snapshot, error) {
	if depth <= 0 {
		depth = m.defaultDepth
	}
	if depth > m.maxDepth {
		return Snapshot{}, fmt.Errorf("%w: %d > %d", ErrBadDepth, depth, m.maxDepth)
	}
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Depth:     depth,
		CreatedAt: now,
		game:      xiangqi.NewGame(first),
		updatedAt: now,
	}

	m.mu.Lock()
	m.games[s.ID] = s
	m.mu.Unlock()

	m.log.Info("new game", zap.String("game_id", s.ID), zap.String("first", first.String()), zap.Int("depth", depth))
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// Get 按 id 取会话
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

func (m *Manager) Snapshot(id string) (Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// Destinations 点击棋子时的落点提示
func (m *Manager) Destinations(id string, from xiangqi.Pos) ([]xiangqi.Pos, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game.PieceAt(from).Color() != s.game.ActiveColor() {
		return nil, nil
	}
	return s.game.Destinations(from), nil
}

// Play 人类走子：必须是当前合法走法之一
func (m *Manager) Play(id string, mv xiangqi.Move) (Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if statusOf(s.game) != StatusOngoing {
		return s.snapshotLocked(), ErrGameOver
	}
	if err := s.game.Play(mv); err != nil {
		return s.snapshotLocked(), err
	}
	s.updatedAt = time.Now()
	m.log.Debug("human move", zap.String("game_id", id), zap.Any("move", mv))
	return s.snapshotLocked(), nil
}

// AIMove 让 AI 为当前走子方搜索并落子；无着法时 Snapshot.Status 为 no_moves
func (m *Manager) AIMove(id string) (Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAI = nil
	if st := statusOf(s.game); st != StatusOngoing {
		return s.snapshotLocked(), nil
	}

	res := m.engine.Search(s.game, engine.SearchConfig{MaxDepth: s.Depth})
	s.lastAI = &res
	if !res.Found {
		m.log.Info("ai has no move", zap.String("game_id", id))
		return s.snapshotLocked(), nil
	}
	s.game.ApplyMove(res.Move)
	s.updatedAt = time.Now()
	return s.snapshotLocked(), nil
}

// Undo 悔棋：恢复上一个快照（不恢复走子方）
func (m *Manager) Undo(id string) (Snapshot, bool, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.game.Undo()
	if ok {
		s.updatedAt = time.Now()
	}
	return s.snapshotLocked(), ok, nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
