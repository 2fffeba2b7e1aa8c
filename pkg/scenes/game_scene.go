package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/neelum/pkg/game"
	"github.com/decker502/neelum/pkg/session"
	"github.com/decker502/neelum/pkg/tracking"
	"github.com/decker502/neelum/pkg/types"
	"github.com/decker502/neelum/pkg/utils"
)

// GameScene 游戏主场景：把输入转交给会话，并绘制会话的只读状态
//
// 两种输入模式：
//   - 追踪模式：光标来自 websocket 追踪端，拖拽植物为手动控制，点击为 HandleTap
//   - 指针模式（桌面测试）：指针位置每帧写入 Feed 充当光标，点击为 HandleTap
type GameScene struct {
	sess        *session.Session
	feed        *tracking.Feed
	pointerFeed bool
	drag        *utils.DragManager
	manual      bool    // 当前是否处于手动拖拽
	overElapsed float64 // 进入结束状态后经过的秒数，用于遮罩淡入

	// waitRelease 进入场景时指针可能仍按着（开始界面的那次点击），松开前忽略
	waitRelease bool
}

// NewGameScene 创建游戏主场景
//
// 参数：
//   - sess: 游戏会话
//   - feed: 追踪样本信箱（指针模式下由本场景写入）
//   - pointerFeed: 是否用指针位置代替追踪端
func NewGameScene(sess *session.Session, feed *tracking.Feed, pointerFeed bool) *GameScene {
	if pointerFeed {
		log.Printf("[GameScene] Pointer fallback enabled: the mouse/touch position drives the plant")
	}
	return &GameScene{
		sess:        sess,
		feed:        feed,
		pointerFeed: pointerFeed,
		drag:        utils.NewDragManager(utils.DefaultTapSlop),
		waitRelease: true,
	}
}

// Update 处理输入并推进会话
func (s *GameScene) Update(deltaTime float64) {
	if s.waitRelease {
		if pressed, _, _ := utils.GetPointerState(); pressed {
			s.sess.Update(deltaTime)
			s.trackOverlay(deltaTime)
			return
		}
		s.waitRelease = false
	}

	s.drag.Update()

	if s.pointerFeed {
		x, y := utils.GetPointerPosition()
		s.feed.Push(types.Vec2{X: float64(x), Y: float64(y)})
	} else {
		s.updateManualControl()
	}

	if s.drag.IsTap() || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sess.HandleTap()
	}

	s.sess.Update(deltaTime)
	s.trackOverlay(deltaTime)
}

func (s *GameScene) trackOverlay(deltaTime float64) {
	if s.sess.Phase() == game.PhaseGameOver {
		s.overElapsed += deltaTime
		return
	}
	s.overElapsed = 0
}

// updateManualControl 拖拽期间由指针直接放置植物
func (s *GameScene) updateManualControl() {
	if s.drag.IsDragging() {
		info := s.drag.GetInfo()
		s.manual = true
		s.sess.SetManualControl(true, types.Vec2{X: float64(info.CurrentX), Y: float64(info.CurrentY)})
		return
	}
	if s.manual && s.drag.JustEnded() {
		s.manual = false
		s.sess.SetManualControl(false, types.Vec2{})
	}
}

// Draw 绘制游戏画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackdrop(screen)
	s.drawEntities(screen)
	s.drawPlayer(screen)
	s.drawHUD(screen)
	s.drawPhaseOverlay(screen)
}

// SaveOnExit 实现 Saveable：窗口关闭时结算进行中的回合
func (s *GameScene) SaveOnExit() bool {
	return s.sess.SaveOnExit()
}
