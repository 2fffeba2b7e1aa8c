package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/neelum/pkg/config"
	"github.com/decker502/neelum/pkg/game"
	"github.com/decker502/neelum/pkg/types"
	"github.com/decker502/neelum/pkg/utils"
)

// 调试字体的字形尺寸（ebitenutil.DebugPrint）
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// cursorSize 追踪光标（鼻尖红点）直径
const cursorSize = 30

// overlayFadeSeconds 结束遮罩淡入时长
const overlayFadeSeconds = 0.4

var (
	backdropColor = color.RGBA{R: 30, G: 34, B: 40, A: 255}
	plainColor    = color.RGBA{R: 235, G: 240, B: 225, A: 255}
	barBackColor  = color.RGBA{R: 80, G: 80, B: 80, A: 200}
	waterColor    = color.RGBA{R: 60, G: 140, B: 230, A: 255}
	sunColor      = color.RGBA{R: 250, G: 200, B: 40, A: 255}
	hazardColor   = color.RGBA{R: 110, G: 60, B: 120, A: 255}
	cursorColor   = color.RGBA{R: 230, G: 40, B: 40, A: 200}
	keypointColor = color.RGBA{R: 120, G: 220, B: 120, A: 160}
	overlayColor  = color.RGBA{A: 160}
)

// categoryColor 返回飘落物种类对应的颜色
func categoryColor(c types.Category) color.RGBA {
	switch c {
	case types.CategoryWater:
		return waterColor
	case types.CategorySun:
		return sunColor
	default:
		return hazardColor
	}
}

// drawBackdrop 绘制背景；显示追踪画面时同时绘制特征点和光标
func (s *GameScene) drawBackdrop(screen *ebiten.Image) {
	if !s.sess.ShowBackdrop() {
		screen.Fill(plainColor)
		return
	}

	screen.Fill(backdropColor)
	for _, kp := range s.feed.Keypoints() {
		vector.DrawFilledCircle(screen, float32(kp.X), float32(kp.Y), 1.5, keypointColor, false)
	}
	if cursor, ok := s.sess.Cursor(); ok {
		vector.DrawFilledCircle(screen, float32(cursor.X), float32(cursor.Y), cursorSize/2, cursorColor, true)
	}
}

func (s *GameScene) drawEntities(screen *ebiten.Image) {
	for _, e := range s.sess.Entities() {
		clr := categoryColor(e.Category)
		x, y, r := float32(e.Position.X), float32(e.Position.Y), float32(e.Size/2)
		if e.Category == types.CategoryHazard {
			// 污染物画成方块，与圆形的补给区分
			vector.DrawFilledRect(screen, x-r, y-r, 2*r, 2*r, clr, false)
			continue
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	}
}

func (s *GameScene) drawPlayer(screen *ebiten.Image) {
	pos := s.sess.PlayerPosition()
	w, h := s.sess.PlayerSize()
	drawPlant(screen, pos.X, pos.Y, w, h)
}

// drawPlant 在 (cx, cy) 绘制植物：花盆、茎和叶片
func drawPlant(screen *ebiten.Image, cx, cy, w, h float64) {
	potH := h * 0.35
	potTop := cy + h/2 - potH
	vector.DrawFilledRect(screen, float32(cx-w/2), float32(potTop), float32(w), float32(potH),
		color.RGBA{R: 170, G: 90, B: 50, A: 255}, false)

	stemTop := cy - h/2 + w/4
	vector.StrokeLine(screen, float32(cx), float32(potTop), float32(cx), float32(stemTop), 4,
		color.RGBA{R: 40, G: 140, B: 60, A: 255}, true)

	leaf := color.RGBA{R: 60, G: 180, B: 80, A: 255}
	vector.DrawFilledCircle(screen, float32(cx-w/4), float32(stemTop+w/4), float32(w/5), leaf, true)
	vector.DrawFilledCircle(screen, float32(cx+w/4), float32(stemTop+w/4), float32(w/5), leaf, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(stemTop), float32(w/4), leaf, true)
}

// drawHUD 绘制分数和两条资源条
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	w := float64(config.GameWindowWidth)
	h := float64(config.GameWindowHeight)

	ebitenutil.DebugPrintAt(screen, scoreLine(s.sess.Score(), s.sess.HighScore()), 10, 10)

	drawBar(screen, config.WaterBarRect(w, h), s.sess.Water().DisplayValue, waterColor, "WATER")
	drawBar(screen, config.SunBarRect(w, h), s.sess.Sun().DisplayValue, sunColor, "SUN")
}

// drawBar 绘制带标签的资源条，数值按显示上限 100 映射
func drawBar(screen *ebiten.Image, r config.Rect, value float64, fill color.RGBA, label string) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), barBackColor, false)
	if fw := r.FillWidth(value, 100); fw > 0 {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(fw), float32(r.H), fill, false)
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, color.White, false)

	labelX := int(r.X + r.W/2 - float64(len(label)*debugGlyphWidth)/2)
	ebitenutil.DebugPrintAt(screen, label, labelX, int(r.Y+r.H)+4)
}

// drawPhaseOverlay 等待输入和游戏结束时的提示
func (s *GameScene) drawPhaseOverlay(screen *ebiten.Image) {
	h := float64(config.GameWindowHeight)

	switch s.sess.Phase() {
	case game.PhaseAwaitingFirstInput:
		drawCenteredText(screen, "Waiting for tracking...", h/2-120)
		drawCenteredText(screen, "Move your nose to control Neelum", h/2-100)

	case game.PhaseGameOver:
		w := float32(config.GameWindowWidth)
		vector.DrawFilledRect(screen, 0, float32(h/2-80), w, 140, overlayFade(s.overElapsed), false)
		lines := gameOverLines(s.sess.EndReason(), s.sess.Score(), s.sess.NewBest())
		for i, line := range lines {
			drawCenteredText(screen, line, h/2-60+float64(i*24))
		}
	}
}

// overlayFade 返回淡入过程中的遮罩颜色
func overlayFade(elapsed float64) color.RGBA {
	c := overlayColor
	c.A = uint8(float64(overlayColor.A) * utils.EaseOutCubic(utils.Progress(elapsed, overlayFadeSeconds)))
	return c
}

// scoreLine 左上角的分数文本
func scoreLine(score, best float64) string {
	return fmt.Sprintf("Score: %.1f  Best: %.1f", score, best)
}

// gameOverLines 结束界面的文字
func gameOverLines(reason game.EndReason, score float64, newBest bool) []string {
	lines := []string{
		"GAME OVER",
		reason.Message(),
		fmt.Sprintf("You survived %.1fs", score),
	}
	if newBest {
		lines = append(lines, "New best!")
	}
	return append(lines, "Tap to restart")
}

// drawCenteredText 水平居中绘制调试文字
func drawCenteredText(screen *ebiten.Image, text string, y float64) {
	x := (config.GameWindowWidth - len(text)*debugGlyphWidth) / 2
	ebitenutil.DebugPrintAt(screen, text, x, int(y)-debugGlyphHeight/2)
}
