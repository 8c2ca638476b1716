package game

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// 音效ID
const (
	// SoundTick 指针越过扇区边界时的短促 "嗒" 声
	SoundTick = "tick"
	// SoundFinish 旋转停止时的提示音
	SoundFinish = "finish"
)

// soundSpec 合成音效参数
type soundSpec struct {
	frequency float64       // 基频（Hz）
	duration  time.Duration // 时长
	decay     float64       // 指数衰减系数，越大越短促
	// minInterval 同一音效两次播放的最小间隔，快速旋转时避免声音糊成一片
	minInterval time.Duration
}

var soundSpecs = map[string]soundSpec{
	SoundTick:   {frequency: 1800, duration: 25 * time.Millisecond, decay: 180, minInterval: 45 * time.Millisecond},
	SoundFinish: {frequency: 660, duration: 180 * time.Millisecond, decay: 18},
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理所有音效的播放（音效在启动时合成，不依赖音频文件）
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 限制同一音效的播放频率
//
// audio.Context 为 nil 时进入降级模式：所有播放请求直接返回 false。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
	lastPlayed      map[string]time.Time
	now             func() time.Time
	logger          log.Logger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil（降级模式）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - logger: 日志，可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, logger log.Logger) *AudioManager {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		lastPlayed:      make(map[string]time.Time),
		now:             time.Now,
		logger:          log.With(logger, "component", "audio"),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 参数：
//   - soundID: 音效ID（SoundTick, SoundFinish）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.shouldPlay(soundID, am.now()) {
		return false
	}
	if am.context == nil {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.SetPosition(0); err != nil {
		level.Warn(am.logger).Log("msg", "failed to rewind sound", "sound", soundID, "err", err)
	}
	player.Play()

	return true
}

// shouldPlay 检查音效开关、音效是否存在以及播放间隔
// 返回 true 时记录本次播放时间
func (am *AudioManager) shouldPlay(soundID string, now time.Time) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false // 音效已禁用
	}

	spec, ok := soundSpecs[soundID]
	if !ok {
		level.Warn(am.logger).Log("msg", "unknown sound", "sound", soundID)
		return false
	}

	if last, ok := am.lastPlayed[soundID]; ok && spec.minInterval > 0 && now.Sub(last) < spec.minInterval {
		return false
	}
	am.lastPlayed[soundID] = now
	return true
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, ok := am.soundPlayers[soundID]; ok {
		return player
	}

	spec := soundSpecs[soundID]
	player := am.context.NewPlayerFromBytes(synthTone(spec, SampleRate))
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultPreferences().SoundVolume
}

// SetSoundEnabled 切换音效开关并返回新状态
func (am *AudioManager) SetSoundEnabled(enabled bool) bool {
	if am.settingsManager == nil {
		return false
	}
	am.settingsManager.SetSoundEnabled(enabled)
	return enabled
}

// SoundEnabled 音效是否启用
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return am.context != nil
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// synthTone 合成一段指数衰减的正弦波
// 输出格式：16 位小端有符号整数，双声道
func synthTone(spec soundSpec, sampleRate int) []byte {
	samples := int(spec.duration.Seconds() * float64(sampleRate))
	buf := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-spec.decay * t)
		v := int16(math.Sin(2*math.Pi*spec.frequency*t) * envelope * 0.6 * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
