package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/neelum/pkg/config"
	"github.com/decker502/neelum/pkg/session"
	"github.com/decker502/neelum/pkg/utils"
)

// StartScene 开始界面：标题、最高分和点击开始提示
type StartScene struct {
	sess         *session.Session
	sceneManager *SceneManager
	elapsed      float64 // 用于提示文字闪烁
}

// NewStartScene 创建开始界面
func NewStartScene(sess *session.Session, sm *SceneManager) *StartScene {
	return &StartScene{
		sess:         sess,
		sceneManager: sm,
	}
}

// Update 点击或按空格开始游戏
func (s *StartScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	tapped, _, _ := utils.IsJustTouchedOrClicked()
	if tapped || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sess.BeginFromStart()
		s.sceneManager.SwitchToNamed(SceneGame)
	}
}

// Draw 绘制开始界面
func (s *StartScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 48, B: 36, A: 255})

	w := float64(config.GameWindowWidth)
	h := float64(config.GameWindowHeight)

	// 植物轻微呼吸
	grow := 6 * utils.Pulse(s.elapsed, 1.6)
	drawPlant(screen, w/2, h/2-40-grow/2, 60, 80+grow)

	drawCenteredText(screen, "NEELUM", h/4)
	drawCenteredText(screen, "Keep your plant alive:", h/4+40)
	drawCenteredText(screen, "catch water and sun, avoid pollution", h/4+60)
	drawCenteredText(screen, fmt.Sprintf("Best: %.1fs", s.sess.HighScore()), h*3/4-40)

	// 提示文字每半秒闪烁一次
	if int(s.elapsed*2)%2 == 0 {
		drawCenteredText(screen, "Tap to begin", h*3/4)
	}
}
