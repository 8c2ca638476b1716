package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/decker502/roulette/pkg/embedded"
	"github.com/decker502/roulette/pkg/render"
)

// TestLoadEmbeddedWheelConfig 内置配置应与默认值一致
func TestLoadEmbeddedWheelConfig(t *testing.T) {
	// 测试环境无法使用根目录的 embed 声明，直接挂载项目根目录
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	defer embedded.Init(nil)

	cfg, err := LoadEmbeddedWheelConfig()
	if err != nil {
		t.Fatalf("LoadEmbeddedWheelConfig() failed: %v", err)
	}

	def := DefaultWheelConfig()
	if cfg.Window != def.Window {
		t.Errorf("Window = %+v, want %+v", cfg.Window, def.Window)
	}
	if cfg.Pointer != def.Pointer {
		t.Errorf("Pointer = %+v, want %+v", cfg.Pointer, def.Pointer)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("Physics = %+v, want %+v", cfg.Physics, def.Physics)
	}
	if cfg.Sectors.Default != 8 {
		t.Errorf("Sectors.Default = %d, want 8", cfg.Sectors.Default)
	}
	if len(cfg.Wheel.Spectrum) != 3 {
		t.Errorf("Spectrum stops = %d, want 3", len(cfg.Wheel.Spectrum))
	}
}

func TestLoadEmbeddedWheelConfig_NotInitialized(t *testing.T) {
	embedded.Init(nil)

	if _, err := LoadEmbeddedWheelConfig(); err == nil {
		t.Error("expected error when embedded resources are not initialized")
	}
}

// TestLoadWheelConfig 测试从磁盘加载并覆盖部分字段
func TestLoadWheelConfig(t *testing.T) {
	t.Run("partial override", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "wheel.yaml")

		yamlText := `physics:
  initialVelocity: 0.5
sectors:
  default: 12
`
		if err := os.WriteFile(testFile, []byte(yamlText), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		cfg, err := LoadWheelConfig(testFile)
		if err != nil {
			t.Fatalf("LoadWheelConfig() failed: %v", err)
		}
		if cfg.Physics.InitialVelocity != 0.5 {
			t.Errorf("InitialVelocity = %v, want 0.5", cfg.Physics.InitialVelocity)
		}
		if cfg.Sectors.Default != 12 {
			t.Errorf("Sectors.Default = %d, want 12", cfg.Sectors.Default)
		}
		// 未出现的字段保留默认值
		if cfg.Physics.DecayRate != 0.01 {
			t.Errorf("DecayRate = %v, want default 0.01", cfg.Physics.DecayRate)
		}
		if cfg.Wheel.Radius != 400 {
			t.Errorf("Radius = %v, want default 400", cfg.Wheel.Radius)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadWheelConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		testFile := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(testFile, []byte("physics: [1, 2"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		_, err := LoadWheelConfig(testFile)
		if err == nil || !strings.Contains(err.Error(), "failed to parse wheel config") {
			t.Fatalf("expected parse error, got %v", err)
		}
	})
}

func TestWheelConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *WheelConfig)
		wantErr string
	}{
		{"默认配置有效", func(c *WheelConfig) {}, ""},
		{"半径为零", func(c *WheelConfig) { c.Wheel.Radius = 0 }, "wheel radius"},
		{"中心圆大于轮盘", func(c *WheelConfig) { c.Wheel.CapRadius = 500 }, "capRadius"},
		{"编号半径越界", func(c *WheelConfig) { c.Wheel.NumberRadius = 1.5 }, "numberRadius"},
		{"没有色标", func(c *WheelConfig) { c.Wheel.Spectrum = nil }, "spectrum"},
		{"非法颜色", func(c *WheelConfig) { c.Pointer.Color = "red" }, "red"},
		{"指针方向反了", func(c *WheelConfig) { c.Pointer.Tip = 500 }, "pointer tip"},
		{"速度非正", func(c *WheelConfig) { c.Physics.InitialVelocity = 0 }, "initialVelocity"},
		{"衰减率越界", func(c *WheelConfig) { c.Physics.DecayRate = 1 }, "decayRate"},
		{"抖动为负", func(c *WheelConfig) { c.Physics.MaxJitter = -1 }, "maxJitter"},
		{"无抖动且不限 tick", func(c *WheelConfig) { c.Physics.MaxJitter = 0; c.Physics.MaxTicks = 0 }, "never stop"},
		{"无抖动但限制 tick", func(c *WheelConfig) { c.Physics.MaxJitter = 0; c.Physics.MaxTicks = 500 }, ""},
		{"有抖动且不限 tick", func(c *WheelConfig) { c.Physics.MaxTicks = 0 }, ""},
		{"tick 间隔为零", func(c *WheelConfig) { c.Physics.TickIntervalMs = 0 }, "tickIntervalMs"},
		{"扇区数太少", func(c *WheelConfig) { c.Sectors.Default = 1 }, "default sector count"},
		{"扇区数太多", func(c *WheelConfig) { c.Sectors.Default = 51 }, "default sector count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultWheelConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestWheelConfig_Conversions(t *testing.T) {
	cfg := DefaultWheelConfig()
	cfg.Physics.TickIntervalMs = 16
	cfg.Wheel.Spectrum = []string{"#000000", "#ffffff"}
	cfg.Wheel.Label = "Spin"

	p := cfg.PhysicsParams()
	if p.TickInterval != 16*time.Millisecond {
		t.Errorf("TickInterval = %v, want 16ms", p.TickInterval)
	}
	if p.InitialVelocity != 0.3 || p.MaxTicks != 10000 {
		t.Errorf("PhysicsParams() = %+v", p)
	}

	style := cfg.WheelStyle()
	if style.Label != "Spin" {
		t.Errorf("Label = %q, want Spin", style.Label)
	}
	if got := style.Spectrum.ColorAt(0); got != render.MustParseHexColor("#000000") {
		t.Errorf("spectrum start = %v", got)
	}
	if got := style.Spectrum.ColorAt(1); got != render.MustParseHexColor("#ffffff") {
		t.Errorf("spectrum end = %v", got)
	}
	if style.PointerBase != 450 || style.PointerTip != 375 {
		t.Errorf("pointer = %v/%v", style.PointerBase, style.PointerTip)
	}

	if bg := cfg.BackgroundColor(); bg != render.MustParseHexColor("#ffffff") {
		t.Errorf("BackgroundColor() = %v", bg)
	}
}
