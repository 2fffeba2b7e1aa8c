// Package tracking 接收外部追踪端（人脸追踪网页）推送的光标位置
//
// 游戏循环每帧调用一次 Latest()，追踪端以自己的节奏推送样本，
// 两者之间只通过 Feed 这个加锁的"最新样本信箱"交互，游戏循环从不阻塞。
package tracking

import (
	"sync"

	"github.com/decker502/neelum/pkg/types"
)

// Source 游戏会话消费的追踪数据源
type Source interface {
	// Latest 返回最近一次样本；从未收到样本时 ok 为 false
	Latest() (types.Vec2, bool)
	// IsReady 追踪端是否已就绪
	IsReady() bool
}

// Feed 线程安全的最新样本信箱，实现 Source
//
// 写入方（websocket 读协程或指针适配器）调用 Push，游戏循环调用 Latest。
// 新样本直接覆盖旧样本，没有队列。
type Feed struct {
	mu        sync.Mutex
	latest    types.Vec2
	hasSample bool
	ready     bool
	samples   uint64
	keypoints []types.Vec2
}

// NewFeed 创建空的 Feed
func NewFeed() *Feed {
	return &Feed{}
}

// Push 写入一个新样本（onSample 回调），第一个样本同时标记就绪
func (f *Feed) Push(p types.Vec2) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest = p
	f.hasSample = true
	f.ready = true
	f.samples++
}

// PushKeypoints 写入可选的全部特征点，仅用于显示
func (f *Feed) PushKeypoints(points []types.Vec2) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keypoints = append(f.keypoints[:0], points...)
}

// MarkReady 追踪端报告模型加载完成
func (f *Feed) MarkReady() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ready = true
}

// Latest 实现 Source
func (f *Feed) Latest() (types.Vec2, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.hasSample
}

// IsReady 实现 Source
func (f *Feed) IsReady() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready
}

// Samples 返回累计收到的样本数
func (f *Feed) Samples() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.samples
}

// Keypoints 返回最近一次特征点的副本
func (f *Feed) Keypoints() []types.Vec2 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.keypoints) == 0 {
		return nil
	}
	out := make([]types.Vec2, len(f.keypoints))
	copy(out, f.keypoints)
	return out
}
