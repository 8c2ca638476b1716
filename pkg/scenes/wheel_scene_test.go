package scenes

import (
	"image/color"
	"strconv"
	"testing"

	"github.com/decker502/roulette/pkg/config"
	"github.com/decker502/roulette/pkg/game"
	"github.com/decker502/roulette/pkg/modules"
	"github.com/decker502/roulette/pkg/render"
	"github.com/decker502/roulette/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
)

type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }

type stubPointer struct {
	x, y     int
	released bool
}

func (p *stubPointer) Position() (int, int) { return p.x, p.y }
func (p *stubPointer) Pressed() bool        { return false }
func (p *stubPointer) JustPressed() bool    { return p.released }
func (p *stubPointer) JustReleased() bool   { return p.released }

type stubKeyboard struct {
	chars []rune
	just  map[ebiten.Key]bool
}

func (k *stubKeyboard) AppendInputChars(r []rune) []rune {
	r = append(r, k.chars...)
	k.chars = nil
	return r
}

func (k *stubKeyboard) KeyPressDuration(key ebiten.Key) int {
	if k.just[key] {
		return 1
	}
	return 0
}

func (k *stubKeyboard) IsKeyJustPressed(key ebiten.Key) bool { return k.just[key] }

// countingSurface 只统计调用次数和文字内容
type countingSurface struct {
	ops   map[string]int
	texts []string
}

func newCountingSurface() *countingSurface {
	return &countingSurface{ops: make(map[string]int)}
}

func (s *countingSurface) Size() (float64, float64) { return 1920, 1080 }
func (s *countingSurface) Clear()                    { s.ops["clear"]++ }
func (s *countingSurface) Save()                     { s.ops["save"]++ }
func (s *countingSurface) Restore()                  { s.ops["restore"]++ }
func (s *countingSurface) Translate(x, y float64)    {}
func (s *countingSurface) Rotate(theta float64)      {}
func (s *countingSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	s.ops["fillCircle"]++
}
func (s *countingSurface) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	s.ops["strokeCircle"]++
}
func (s *countingSurface) FillWedge(cx, cy, r, start, end float64, clr color.Color) {
	s.ops["fillWedge"]++
}
func (s *countingSurface) StrokeWedge(cx, cy, r, start, end, width float64, clr color.Color) {
	s.ops["strokeWedge"]++
}
func (s *countingSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, clr color.Color) {
	s.ops["fillTriangle"]++
}
func (s *countingSurface) FillRect(x, y, w, h float64, clr color.Color) { s.ops["fillRect"]++ }
func (s *countingSurface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	s.ops["strokeRect"]++
}
func (s *countingSurface) Text(x, y float64, str string, size float64, clr color.Color) {
	s.texts = append(s.texts, str)
}
func (s *countingSurface) TextWidth(str string, size float64) float64 { return 0 }

type sceneHarness struct {
	scene    *WheelScene
	pointer  *stubPointer
	keyboard *stubKeyboard
}

func newSceneHarness(t *testing.T, sectors int, audio *game.AudioManager) *sceneHarness {
	t.Helper()
	h := &sceneHarness{
		pointer:  &stubPointer{x: -1, y: -1},
		keyboard: &stubKeyboard{just: map[ebiten.Key]bool{}},
	}
	h.scene = NewWheelScene(WheelSceneConfig{
		Physics:     wheel.DefaultPhysics(),
		Style:       render.DefaultWheelStyle(),
		Background:  color.White,
		SectorCount: sectors,
		Audio:       audio,
		Input:       modules.ControlPanelInput{Pointer: h.pointer, Keyboard: h.keyboard},
		Random:      fixedRandom(0.5),
	}, nil)
	return h
}

// press 模拟按下一个快捷键的一帧
func (h *sceneHarness) press(key ebiten.Key) {
	h.keyboard.just[key] = true
	h.scene.Update(1.0 / 60)
	h.keyboard.just = map[ebiten.Key]bool{}
}

// runFor 以 60 FPS 推进指定秒数
func (h *sceneHarness) runFor(seconds float64) {
	for i := 0; i < int(seconds*60); i++ {
		h.scene.Update(1.0 / 60)
	}
}

func TestWheelScene_SpinUntilStop(t *testing.T) {
	h := newSceneHarness(t, 0, nil)
	engine := h.scene.Engine()

	if h.scene.Panel().Readout() != wheel.DefaultSectors {
		t.Fatalf("initial readout = %d, want %d", h.scene.Panel().Readout(), wheel.DefaultSectors)
	}

	h.press(ebiten.KeySpace)
	if !engine.IsSpinning() {
		t.Fatal("space should start a spin")
	}

	// 重置在旋转中被忽略
	angle := engine.State().Angle
	h.press(ebiten.KeyR)
	if engine.State().Angle < angle {
		t.Error("reset should be ignored while spinning")
	}

	// v0=0.3 时约 500 个 tick（5 秒）停止
	h.runFor(10)
	if engine.IsSpinning() {
		t.Fatal("spin did not stop within 10 seconds")
	}

	state := engine.State()
	want := wheel.ResolveSector(state.Angle, state.SectorCount)
	if got := h.scene.Panel().Readout(); got != want {
		t.Errorf("readout = %d, want %d", got, want)
	}

	// 停止后可以重置
	h.press(ebiten.KeyR)
	if engine.State().Angle != 0 {
		t.Errorf("angle after reset = %v, want 0", engine.State().Angle)
	}
	if h.scene.Panel().Readout() != state.SectorCount {
		t.Errorf("readout after reset = %d, want %d", h.scene.Panel().Readout(), state.SectorCount)
	}
}

func TestWheelScene_SpinButton(t *testing.T) {
	h := newSceneHarness(t, 0, nil)
	left, _ := config.ButtonColumns()

	h.pointer.x, h.pointer.y = int(left)+10, int(config.ButtonY)+10
	h.pointer.released = true
	h.scene.Update(1.0 / 60)
	h.pointer.released = false

	if !h.scene.Engine().IsSpinning() {
		t.Error("spin button should start a spin")
	}
}

func TestWheelScene_SectorInput(t *testing.T) {
	h := newSceneHarness(t, 0, nil)
	engine := h.scene.Engine()

	// 点击输入框，删除 "8"，输入 "12"
	h.pointer.x = int(config.PanelX + config.CountLabelWidth + 10)
	h.pointer.y = int(config.CountInputY + 10)
	h.pointer.released = true
	h.scene.Update(1.0 / 60)
	h.pointer.released = false

	h.press(ebiten.KeyBackspace)
	if engine.State().SectorCount != wheel.DefaultSectors {
		t.Fatal("empty input should be ignored")
	}

	h.keyboard.chars = []rune("1")
	h.scene.Update(1.0 / 60)
	if engine.State().SectorCount != wheel.DefaultSectors {
		t.Fatal("1 is out of range and should be ignored")
	}

	h.keyboard.chars = []rune("2")
	h.scene.Update(1.0 / 60)
	if engine.State().SectorCount != 12 {
		t.Fatalf("sector count = %d, want 12", engine.State().SectorCount)
	}
	if h.scene.Panel().Readout() != 12 {
		t.Errorf("readout = %d, want 12 at angle 0", h.scene.Panel().Readout())
	}
}

func TestWheelScene_InitialSectorCount(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, wheel.DefaultSectors},
		{20, 20},
		{1, wheel.DefaultSectors},
		{51, wheel.DefaultSectors},
	}
	for _, tt := range tests {
		h := newSceneHarness(t, tt.in, nil)
		if got := h.scene.Engine().State().SectorCount; got != tt.want {
			t.Errorf("SectorCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if got := h.scene.Panel().SectorText(); got != strconv.Itoa(tt.want) {
			t.Errorf("input text = %q, want %d", got, tt.want)
		}
	}
}

func TestWheelScene_DrawTo(t *testing.T) {
	h := newSceneHarness(t, 5, nil)
	s := newCountingSurface()
	h.scene.DrawTo(s)

	if s.ops["fillWedge"] != 5 {
		t.Errorf("wedges = %d, want 5", s.ops["fillWedge"])
	}
	if s.ops["fillTriangle"] != 1 {
		t.Errorf("pointer triangles = %d, want 1", s.ops["fillTriangle"])
	}
	if s.ops["save"] != s.ops["restore"] {
		t.Errorf("unbalanced save/restore: %d vs %d", s.ops["save"], s.ops["restore"])
	}

	found := false
	for _, txt := range s.texts {
		if txt == "[ 5 ]" {
			found = true
		}
	}
	if !found {
		t.Errorf("readout text missing from %q", s.texts)
	}
}

func TestWheelScene_SoundAndSave(t *testing.T) {
	settings := game.NewSettingsManager(nil, nil)
	audio := game.NewAudioManager(nil, settings, nil)
	h := newSceneHarness(t, 0, audio)

	// 音效按钮切换设置
	left, _ := config.ButtonColumns()
	h.pointer.x, h.pointer.y = int(left)+10, int(config.SoundButtonY)+10
	h.pointer.released = true
	h.scene.Update(1.0 / 60)
	h.pointer.released = false

	if settings.GetSettings().SoundEnabled {
		t.Error("sound button should disable sound")
	}

	// 没有音频上下文时旋转也能正常完成
	h.press(ebiten.KeySpace)
	h.runFor(10)
	if h.scene.Engine().IsSpinning() {
		t.Error("spin did not stop")
	}

	if !h.scene.SaveOnExit() {
		t.Error("SaveOnExit without settings should succeed")
	}
}
