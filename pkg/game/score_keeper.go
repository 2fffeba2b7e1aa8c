package game

import (
	"fmt"
	"log"
)

// ScoreKeeper 记录存活时间作为分数，并维护持久化的最高分
type ScoreKeeper struct {
	score     float64
	highScore float64
	finalized bool
	store     HighScoreStore // 可为 nil（不持久化）
}

// NewScoreKeeper 创建计分器
//
// 参数：
//   - store: 最高分存储，可为 nil
func NewScoreKeeper(store HighScoreStore) *ScoreKeeper {
	return &ScoreKeeper{store: store}
}

// Load 从存储读取最高分
// 读取失败时最高分保持为 0，并返回错误供调用方记录
func (sk *ScoreKeeper) Load() error {
	if sk.store == nil {
		return nil
	}
	high, err := sk.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}
	if high > 0 {
		sk.highScore = high
	}
	return nil
}

// Tick 累加经过的时间（秒），仅在游戏进行中调用
func (sk *ScoreKeeper) Tick(dt float64) {
	if dt <= 0 || sk.finalized {
		return
	}
	sk.score += dt
}

// Finalize 回合结束时调用，每回合只生效一次
//
// 若本局分数超过最高分，则更新最高分并请求持久化。
//
// 返回：
//   - bool: 最高分是否被刷新
//   - error: 持久化失败时返回错误（内存中的最高分仍然更新）
func (sk *ScoreKeeper) Finalize() (bool, error) {
	if sk.finalized {
		return false, nil
	}
	sk.finalized = true

	if sk.score <= sk.highScore {
		return false, nil
	}

	sk.highScore = sk.score
	log.Printf("[ScoreKeeper] New high score: %.2f", sk.highScore)

	if sk.store == nil {
		return true, nil
	}
	if err := sk.store.Save(sk.highScore); err != nil {
		return true, fmt.Errorf("failed to save high score: %w", err)
	}
	return true, nil
}

// Reset 分数清零，最高分不变
func (sk *ScoreKeeper) Reset() {
	sk.score = 0
	sk.finalized = false
}

// Score 返回当前分数（秒）
func (sk *ScoreKeeper) Score() float64 {
	return sk.score
}

// HighScore 返回最高分（秒）
func (sk *ScoreKeeper) HighScore() float64 {
	return sk.highScore
}

// Finalized 本回合是否已结算
func (sk *ScoreKeeper) Finalized() bool {
	return sk.finalized
}
