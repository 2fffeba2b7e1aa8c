package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultProfileName 未指定时使用的平衡配置名称
const DefaultProfileName = "default"

// ResourceConfig 单项生命资源（水分或日照）的数值配置
type ResourceConfig struct {
	Start           float64 `yaml:"start"`           // 回合开始时的初始值
	DisplayCeiling  float64 `yaml:"displayCeiling"`  // 显示上限（进度条满格）
	OverflowCeiling float64 `yaml:"overflowCeiling"` // 硬上限，增益后钳制到此值
	DecayPerSecond  float64 `yaml:"decayPerSecond"`  // 每秒衰减量
	GainPerPx       float64 `yaml:"gainPerPx"`       // 每像素尺寸带来的增益
	OverflowFatal   bool    `yaml:"overflowFatal"`   // 超过显示上限是否致死（仅日照）
}

// SpawnWeights 飘落物种类的权重
// 权重无需归一化，抽取时按总和计算累积阈值
type SpawnWeights struct {
	Water  float64 `yaml:"water"`
	Sun    float64 `yaml:"sun"`
	Hazard float64 `yaml:"hazard"`
}

// Total 返回权重总和
func (w SpawnWeights) Total() float64 {
	return w.Water + w.Sun + w.Hazard
}

// SpawnConfig 飘落物生成配置
type SpawnConfig struct {
	IntervalSeconds float64      `yaml:"intervalSeconds"` // 生成间隔（秒）
	Weights         SpawnWeights `yaml:"weights"`         // 种类权重
	SizeMin         float64      `yaml:"sizeMin"`         // 最小尺寸（像素）
	SizeMax         float64      `yaml:"sizeMax"`         // 最大尺寸（像素）
	SpeedMin        float64      `yaml:"speedMin"`        // 最小速度（像素/秒）
	SpeedMax        float64      `yaml:"speedMax"`        // 最大速度（像素/秒）
	CullMargin      float64      `yaml:"cullMargin"`      // 离屏多远后回收（像素）
}

// PlayerConfig 玩家植物配置
type PlayerConfig struct {
	Smoothing float64 `yaml:"smoothing"` // 每帧向光标移动剩余距离的比例 (0,1]
	Width     float64 `yaml:"width"`     // 碰撞盒宽度
	Height    float64 `yaml:"height"`    // 碰撞盒高度
}

// BalanceProfile 一套完整的游戏平衡参数
type BalanceProfile struct {
	Name             string         `yaml:"-"`
	Water            ResourceConfig `yaml:"water"`
	Sun              ResourceConfig `yaml:"sun"`
	Spawn            SpawnConfig    `yaml:"spawn"`
	Player           PlayerConfig   `yaml:"player"`
	RestartSkipsWait bool           `yaml:"restartSkipsWait"` // 重开后是否跳过等待追踪输入
}

// BalanceFile 对应 data/balance.yaml 的顶层结构
type BalanceFile struct {
	Profiles map[string]BalanceProfile `yaml:"profiles"`
}

// ParseBalanceProfiles 解析并验证平衡配置 YAML
//
// 参数：
//   - data: YAML 内容
//
// 返回：
//   - map[string]*BalanceProfile: 配置名 -> 配置
//   - error: 解析或验证失败时返回错误
func ParseBalanceProfiles(data []byte) (map[string]*BalanceProfile, error) {
	var file BalanceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML: %w", err)
	}

	if len(file.Profiles) == 0 {
		return nil, fmt.Errorf("balance config has no profiles")
	}

	profiles := make(map[string]*BalanceProfile, len(file.Profiles))
	for name, profile := range file.Profiles {
		p := profile
		p.Name = name
		if err := validateBalanceProfile(&p); err != nil {
			return nil, fmt.Errorf("invalid balance profile %q: %w", name, err)
		}
		profiles[name] = &p
	}

	return profiles, nil
}

// LoadBalanceProfiles 从磁盘上的 YAML 文件加载平衡配置
func LoadBalanceProfiles(filePath string) (map[string]*BalanceProfile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}
	return ParseBalanceProfiles(data)
}

// SelectProfile 按名称选择配置，名称为空时使用默认配置
func SelectProfile(profiles map[string]*BalanceProfile, name string) (*BalanceProfile, error) {
	if name == "" {
		name = DefaultProfileName
	}
	profile, ok := profiles[name]
	if !ok {
		names := make([]string, 0, len(profiles))
		for n := range profiles {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown balance profile %q (available: %v)", name, names)
	}
	return profile, nil
}

// validateBalanceProfile 验证配置的有效性
func validateBalanceProfile(p *BalanceProfile) error {
	if err := validateResource("water", p.Water); err != nil {
		return err
	}
	if err := validateResource("sun", p.Sun); err != nil {
		return err
	}

	s := p.Spawn
	if s.IntervalSeconds <= 0 {
		return fmt.Errorf("spawn.intervalSeconds must be > 0, got %v", s.IntervalSeconds)
	}
	if s.Weights.Water < 0 || s.Weights.Sun < 0 || s.Weights.Hazard < 0 {
		return fmt.Errorf("spawn.weights must be >= 0, got %+v", s.Weights)
	}
	if s.Weights.Total() <= 0 {
		return fmt.Errorf("spawn.weights must not all be zero")
	}
	if s.SizeMin <= 0 || s.SizeMax < s.SizeMin {
		return fmt.Errorf("spawn size range invalid: [%v, %v]", s.SizeMin, s.SizeMax)
	}
	if s.SpeedMin <= 0 || s.SpeedMax < s.SpeedMin {
		return fmt.Errorf("spawn speed range invalid: [%v, %v]", s.SpeedMin, s.SpeedMax)
	}
	if s.CullMargin < 0 {
		return fmt.Errorf("spawn.cullMargin must be >= 0, got %v", s.CullMargin)
	}

	if p.Player.Smoothing <= 0 || p.Player.Smoothing > 1 {
		return fmt.Errorf("player.smoothing must be in (0, 1], got %v", p.Player.Smoothing)
	}
	if p.Player.Width <= 0 || p.Player.Height <= 0 {
		return fmt.Errorf("player size must be > 0, got %vx%v", p.Player.Width, p.Player.Height)
	}

	return nil
}

func validateResource(name string, r ResourceConfig) error {
	if r.DisplayCeiling <= 0 {
		return fmt.Errorf("%s.displayCeiling must be > 0, got %v", name, r.DisplayCeiling)
	}
	if r.OverflowCeiling < r.DisplayCeiling {
		return fmt.Errorf("%s.overflowCeiling (%v) must be >= displayCeiling (%v)", name, r.OverflowCeiling, r.DisplayCeiling)
	}
	if r.Start <= 0 || r.Start > r.DisplayCeiling {
		return fmt.Errorf("%s.start must be in (0, %v], got %v", name, r.DisplayCeiling, r.Start)
	}
	if r.DecayPerSecond < 0 {
		return fmt.Errorf("%s.decayPerSecond must be >= 0, got %v", name, r.DecayPerSecond)
	}
	if r.GainPerPx < 0 {
		return fmt.Errorf("%s.gainPerPx must be >= 0, got %v", name, r.GainPerPx)
	}
	return nil
}
