// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/neelum/pkg/config"
	"github.com/decker502/neelum/pkg/embedded"
	"github.com/decker502/neelum/pkg/game"
	"github.com/decker502/neelum/pkg/scenes"
	"github.com/decker502/neelum/pkg/session"
	"github.com/decker502/neelum/pkg/tracking"
	"github.com/decker502/neelum/pkg/utils"
)

// BalanceFile 内嵌平衡配置的路径
const BalanceFile = "data/balance.yaml"

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager   *scenes.SceneManager
	sess           *session.Session
	stopTracking   context.CancelFunc
	verbose        bool
	shutdownCalled bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg config.AppConfig) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	profile, err := LoadProfile(cfg)
	if err != nil {
		return nil, fmt.Errorf("平衡配置加载失败: %w", err)
	}
	log.Printf("[App] Using balance profile %q", profile.Name)

	// Android 上 gdata 不会自动创建存档目录
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	} else if root := utils.StorageRoot(); root != "" {
		log.Printf("[App] Storage root: %s", root)
	}

	store := game.OpenGdataHighScoreStore(cfg.SaveAppName)
	score := game.NewScoreKeeper(store)
	if err := score.Load(); err != nil {
		log.Printf("[App] Warning: %v (starting with high score 0)", err)
	}

	// 追踪输入：配置了地址时启动 websocket 服务，否则用指针代替
	feed := tracking.NewFeed()
	ctx, cancel := context.WithCancel(context.Background())
	// 移动端没有追踪端，触摸位置直接充当光标
	pointerFeed := cfg.TrackingAddr == "" || utils.IsMobile()
	if !pointerFeed {
		server := tracking.NewServer(feed, cfg.TrackingAddr)
		go func() {
			if err := server.Serve(ctx); err != nil {
				log.Printf("[App] Tracking server stopped: %v", err)
			}
		}()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess := session.New(session.Options{
		Profile:         profile,
		Source:          feed,
		Score:           score,
		Rand:            rand.New(rand.NewSource(seed)),
		Width:           config.GameWindowWidth,
		Height:          config.GameWindowHeight,
		SkipStartScreen: cfg.SkipStartScreen,
	})

	// 创建场景管理器
	sceneManager := scenes.NewSceneManager()
	sceneManager.Register(scenes.SceneStart, func() scenes.Scene {
		return scenes.NewStartScene(sess, sceneManager)
	})
	sceneManager.Register(scenes.SceneGame, func() scenes.Scene {
		return scenes.NewGameScene(sess, feed, pointerFeed)
	})

	if cfg.SkipStartScreen {
		log.Printf("[App] SkipStartScreen enabled, going straight to the game scene")
		sceneManager.SwitchToNamed(scenes.SceneGame)
	} else {
		sceneManager.SwitchToNamed(scenes.SceneStart)
	}

	return &App{
		sceneManager: sceneManager,
		sess:         sess,
		stopTracking: cancel,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadProfile 加载平衡配置并选出 cfg.Profile
// BalancePath 非空时从磁盘读取，否则读取内嵌的 data/balance.yaml
func LoadProfile(cfg config.AppConfig) (*config.BalanceProfile, error) {
	var profiles map[string]*config.BalanceProfile
	if cfg.BalancePath != "" {
		loaded, err := config.LoadBalanceProfiles(cfg.BalancePath)
		if err != nil {
			return nil, err
		}
		profiles = loaded
	} else {
		data, err := embedded.ReadFile(BalanceFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded %s: %w", BalanceFile, err)
		}
		parsed, err := config.ParseBalanceProfiles(data)
		if err != nil {
			return nil, err
		}
		profiles = parsed
	}
	return config.SelectProfile(profiles, cfg.Profile)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Shutdown 保存进行中的回合并停止追踪服务，可重复调用
func (a *App) Shutdown() {
	if a.shutdownCalled {
		return
	}
	a.shutdownCalled = true

	if saveable, ok := a.sceneManager.GetCurrentScene().(scenes.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: failed to save on exit")
		}
	}
	a.stopTracking()
	log.Printf("[App] Shutdown complete")
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Session 返回游戏会话
func (a *App) Session() *session.Session {
	return a.sess
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
