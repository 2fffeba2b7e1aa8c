package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/neelum/pkg/app"
	"github.com/decker502/neelum/pkg/config"
	"github.com/decker502/neelum/pkg/embedded"
)

func main() {
	// 环境变量提供默认值，命令行参数覆盖
	cfg, err := config.LoadAppConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置错误: %v\n", err)
		os.Exit(2)
	}

	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "显示详细日志")
	flag.StringVar(&cfg.Profile, "profile", cfg.Profile, "平衡配置名称 (default, classic)")
	flag.StringVar(&cfg.BalancePath, "balance", cfg.BalancePath, "从磁盘加载平衡配置文件（默认使用内嵌配置）")
	flag.StringVar(&cfg.TrackingAddr, "track", cfg.TrackingAddr, "追踪端 websocket 监听地址，如 :8765（为空时用鼠标/触摸控制）")
	flag.BoolVar(&cfg.SkipStartScreen, "skip-start", cfg.SkipStartScreen, "跳过开始界面")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Neelum")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 关闭窗口时先保存最高分，由 App.Update 返回 ebiten.Termination
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "游戏运行错误: %v\n", err)
		os.Exit(1)
	}
	gameApp.Shutdown()
}
