package media

import (
	"log"

	"github.com/decker502/stardodge/pkg/assets"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音效播放
//
// 音效在第一次播放时由 assets 合成为 PCM 并缓存播放器；
// 音量和开关从 SettingsManager 读取。
type AudioManager struct {
	context         *audio.Context
	config          *assets.ResourceConfig
	settingsManager *game.SettingsManager // 可为 nil，使用默认音量
	pcmCache        map[string][]byte
	players         map[string]*audio.Player
}

// NewAudioManager 创建音频管理器
func NewAudioManager(ctx *audio.Context, cfg *assets.ResourceConfig, sm *game.SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		config:          cfg,
		settingsManager: sm,
		pcmCache:        make(map[string][]byte),
		players:         make(map[string]*audio.Player),
	}
}

// RequestPlay 播放音效（AssetSink 的音效部分）
func (am *AudioManager) RequestPlay(soundID string) {
	am.PlaySound(soundID)
}

// PlaySound 播放音效，返回是否真正开始播放
func (am *AudioManager) PlaySound(soundID string) bool {
	volume := am.volume()
	if volume <= 0 {
		return false
	}

	player := am.getPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PCM 返回音效的 PCM 数据（合成后缓存）
func (am *AudioManager) PCM(soundID string) ([]byte, bool) {
	if pcm, ok := am.pcmCache[soundID]; ok {
		return pcm, true
	}

	res, ok := am.config.Sound(soundID)
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil, false
	}

	rate := beep.SampleRate(am.context.SampleRate())
	pcm := assets.RenderPCM(assets.NewSoundStreamer(res, rate, 1))
	am.pcmCache[soundID] = pcm
	return pcm, true
}

// PreloadSounds 预先合成全部音效
func (am *AudioManager) PreloadSounds() {
	for _, s := range am.config.Sounds {
		am.getPlayer(s.ID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.config.Sounds))
}

func (am *AudioManager) getPlayer(soundID string) *audio.Player {
	if player, ok := am.players[soundID]; ok {
		return player
	}
	pcm, ok := am.PCM(soundID)
	if !ok {
		return nil
	}
	player := am.context.NewPlayerFromBytes(pcm)
	am.players[soundID] = player
	return player
}

func (am *AudioManager) volume() float64 {
	if am.settingsManager == nil {
		return game.DefaultSettings().SoundVolume
	}
	return am.settingsManager.EffectiveVolume()
}

// Sink 把精灵请求和音效请求合并为 game.AssetSink
type Sink struct {
	Audio     *AudioManager
	Resources *ResourceManager
}

// RequestPlay 实现 game.AssetSink
func (s Sink) RequestPlay(effectID string) {
	if s.Audio != nil {
		s.Audio.RequestPlay(effectID)
	}
}

// RequestSprite 实现 game.AssetSink
func (s Sink) RequestSprite(assetID string) {
	if s.Resources != nil {
		s.Resources.RequestSprite(assetID)
	}
}

var _ game.AssetSink = Sink{}
