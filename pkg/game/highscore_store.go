package game

import (
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreStore 最高分持久化接口
// 整个游戏只持久化这一个数值
type HighScoreStore interface {
	Load() (float64, error)
	Save(score float64) error
}

// highScoreRecord 持久化的数据结构（YAML 格式，与项目其他配置文件保持一致）
type highScoreRecord struct {
	Best float64 `yaml:"best"`
}

// 存储路径常量
const (
	highScoreObject   = "highscore"
	highScoreProperty = "best"
)

// GdataHighScoreStore 基于 gdata 的跨平台最高分存储
//
// gdataManager 为 nil 时进入降级模式：最高分只保存在内存中，游戏仍可正常运行。
type GdataHighScoreStore struct {
	gdataManager *gdata.Manager
	fallback     *MemoryHighScoreStore
}

// NewGdataHighScoreStore 创建最高分存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewGdataHighScoreStore(gdataManager *gdata.Manager) *GdataHighScoreStore {
	return &GdataHighScoreStore{
		gdataManager: gdataManager,
		fallback:     NewMemoryHighScoreStore(0),
	}
}

// OpenGdataHighScoreStore 以指定应用名打开 gdata 存储
// 打开失败时记录警告并返回降级模式的存储
func OpenGdataHighScoreStore(appName string) *GdataHighScoreStore {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[HighScore] Warning: gdata unavailable: %v (high score kept in memory)", err)
		return NewGdataHighScoreStore(nil)
	}
	return NewGdataHighScoreStore(manager)
}

// Persistent 是否真正持久化（非降级模式）
func (s *GdataHighScoreStore) Persistent() bool {
	return s.gdataManager != nil
}

// Load 读取最高分
//
// 存档不存在时返回 0 且不报错
func (s *GdataHighScoreStore) Load() (float64, error) {
	if s.gdataManager == nil {
		return s.fallback.Load()
	}

	if !s.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return 0, nil
	}

	data, err := s.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}

	var record highScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return 0, fmt.Errorf("failed to unmarshal high score: %w", err)
	}

	if record.Best < 0 {
		return 0, nil
	}
	return record.Best, nil
}

// Save 保存最高分
func (s *GdataHighScoreStore) Save(score float64) error {
	if s.gdataManager == nil {
		return s.fallback.Save(score)
	}

	data, err := yaml.Marshal(highScoreRecord{Best: score})
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[HighScore] High score saved: %.2f", score)
	return nil
}

// MemoryHighScoreStore 内存中的最高分存储
// 用于测试以及 gdata 不可用时的降级
type MemoryHighScoreStore struct {
	mu    sync.Mutex
	best  float64
	saves int
}

// NewMemoryHighScoreStore 创建内存存储
func NewMemoryHighScoreStore(initial float64) *MemoryHighScoreStore {
	return &MemoryHighScoreStore{best: initial}
}

// Load 返回当前保存的最高分
func (m *MemoryHighScoreStore) Load() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// Save 保存最高分
func (m *MemoryHighScoreStore) Save(score float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = score
	m.saves++
	return nil
}

// Saves 返回 Save 被调用的次数
func (m *MemoryHighScoreStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
