package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppConfig 应用启动配置
// 字段先从环境变量读取，再由命令行参数覆盖（见 main.go）
type AppConfig struct {
	// Verbose 启用详细日志输出
	Verbose bool `env:"NEELUM_VERBOSE"`
	// Profile 平衡配置名称（data/balance.yaml 中的 key）
	Profile string `env:"NEELUM_PROFILE" envDefault:"default"`
	// BalancePath 磁盘上的平衡配置文件，为空时使用内嵌配置
	BalancePath string `env:"NEELUM_BALANCE_PATH"`
	// TrackingAddr 面部追踪 websocket 监听地址（如 ":8765"），为空时使用鼠标/触摸代替
	TrackingAddr string `env:"NEELUM_TRACKING_ADDR"`
	// SkipStartScreen 跳过开始界面，直接进入等待追踪输入状态
	SkipStartScreen bool `env:"NEELUM_SKIP_START"`
	// SaveAppName gdata 存档使用的应用名
	SaveAppName string `env:"NEELUM_SAVE_APP" envDefault:"neelum"`
	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `env:"NEELUM_SEED"`
}

// LoadAppConfigFromEnv 从环境变量加载应用配置
func LoadAppConfigFromEnv() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
