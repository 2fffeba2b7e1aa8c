package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validProfileYAML = `
profiles:
  default:
    water:
      start: 100
      displayCeiling: 100
      overflowCeiling: 100
      decayPerSecond: 4.5
      gainPerPx: 0.75
    sun:
      start: 50
      displayCeiling: 100
      overflowCeiling: 120
      decayPerSecond: 4.8
      gainPerPx: 0.5
      overflowFatal: true
    spawn:
      intervalSeconds: 0.75
      weights: {water: 0.45, sun: 0.45, hazard: 0.10}
      sizeMin: 10
      sizeMax: 30
      speedMin: 180
      speedMax: 360
      cullMargin: 40
    player:
      smoothing: 0.1
      width: 60
      height: 80
`

func TestLoadBalanceProfiles(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, map[string]*BalanceProfile)
	}{
		{
			name:        "valid config",
			yamlContent: validProfileYAML,
			validate: func(t *testing.T, profiles map[string]*BalanceProfile) {
				p := profiles["default"]
				if p == nil {
					t.Fatal("expected default profile")
				}
				if p.Name != "default" {
					t.Errorf("expected profile name = default, got %q", p.Name)
				}
				if p.Water.Start != 100 || p.Sun.Start != 50 {
					t.Errorf("expected starts 100/50, got %v/%v", p.Water.Start, p.Sun.Start)
				}
				if !p.Sun.OverflowFatal || p.Water.OverflowFatal {
					t.Errorf("expected only sun overflow to be fatal")
				}
				if p.Spawn.Weights.Hazard != 0.10 {
					t.Errorf("expected hazard weight = 0.10, got %v", p.Spawn.Weights.Hazard)
				}
			},
		},
		{
			name:        "no profiles",
			yamlContent: "profiles: {}\n",
			wantErr:     true,
			errContains: "has no profiles",
		},
		{
			name:        "zero interval",
			yamlContent: strings.Replace(validProfileYAML, "intervalSeconds: 0.75", "intervalSeconds: 0", 1),
			wantErr:     true,
			errContains: "spawn.intervalSeconds must be > 0",
		},
		{
			name:        "overflow below display ceiling",
			yamlContent: strings.Replace(validProfileYAML, "overflowCeiling: 120", "overflowCeiling: 90", 1),
			wantErr:     true,
			errContains: "sun.overflowCeiling",
		},
		{
			name:        "smoothing out of range",
			yamlContent: strings.Replace(validProfileYAML, "smoothing: 0.1", "smoothing: 1.5", 1),
			wantErr:     true,
			errContains: "player.smoothing must be in (0, 1]",
		},
		{
			name:        "inverted size range",
			yamlContent: strings.Replace(validProfileYAML, "sizeMax: 30", "sizeMax: 5", 1),
			wantErr:     true,
			errContains: "spawn size range invalid",
		},
		{
			name:        "all weights zero",
			yamlContent: strings.Replace(validProfileYAML, "{water: 0.45, sun: 0.45, hazard: 0.10}", "{water: 0, sun: 0, hazard: 0}", 1),
			wantErr:     true,
			errContains: "must not all be zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 创建临时 YAML 文件
			tmpFile := filepath.Join(t.TempDir(), "balance.yaml")
			if err := os.WriteFile(tmpFile, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to create temp file: %v", err)
			}

			profiles, err := LoadBalanceProfiles(tmpFile)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errContains)
				} else if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, profiles)
			}
		})
	}
}

func TestLoadBalanceProfiles_FileNotFound(t *testing.T) {
	_, err := LoadBalanceProfiles("/nonexistent/balance.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !strings.Contains(err.Error(), "failed to read balance file") {
		t.Errorf("expected error about reading file, got: %v", err)
	}
}

// TestShippedBalanceProfiles 验证仓库自带的 data/balance.yaml 可以通过校验
func TestShippedBalanceProfiles(t *testing.T) {
	profiles, err := LoadBalanceProfiles(filepath.Join("..", "..", "data", "balance.yaml"))
	if err != nil {
		t.Fatalf("shipped balance.yaml is invalid: %v", err)
	}

	for _, name := range []string{"default", "classic"} {
		p, err := SelectProfile(profiles, name)
		if err != nil {
			t.Fatalf("SelectProfile(%q): %v", name, err)
		}
		if p.Water.Start != 100 || p.Sun.Start != 50 {
			t.Errorf("%s: expected starts 100/50, got %v/%v", name, p.Water.Start, p.Sun.Start)
		}
		if p.Water.OverflowFatal {
			t.Errorf("%s: water overflow must not be fatal", name)
		}
		if !p.Sun.OverflowFatal {
			t.Errorf("%s: sun overflow must be fatal", name)
		}
	}

	// 默认配置中日照消耗略快于水分
	def := profiles["default"]
	if def.Sun.DecayPerSecond <= def.Water.DecayPerSecond {
		t.Errorf("default: expected sun to decay faster than water, got sun=%v water=%v",
			def.Sun.DecayPerSecond, def.Water.DecayPerSecond)
	}
}

func TestSelectProfile(t *testing.T) {
	profiles, err := ParseBalanceProfiles([]byte(validProfileYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 空名称回退到默认配置
	p, err := SelectProfile(profiles, "")
	if err != nil || p.Name != DefaultProfileName {
		t.Errorf("SelectProfile(\"\") = %v, %v; want default profile", p, err)
	}

	_, err = SelectProfile(profiles, "hardcore")
	if err == nil || !strings.Contains(err.Error(), "unknown balance profile") {
		t.Errorf("expected unknown profile error, got %v", err)
	}
}
