package main

import (
	"log"
	"time"

	"github.com/decker502/stardodge/pkg/assets"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/gopxl/beep/speaker"
)

// beepSink 用 beep 扬声器播放合成音效
// 精灵请求只检查资源是否存在，终端用字符绘制
type beepSink struct {
	resources *assets.ResourceConfig
	settings  *game.SettingsManager
	enabled   bool
	missing   map[string]bool
}

func newBeepSink(resources *assets.ResourceConfig, settings *game.SettingsManager) *beepSink {
	return &beepSink{
		resources: resources,
		settings:  settings,
		missing:   make(map[string]bool),
	}
}

// init 初始化扬声器，失败时静音运行
func (s *beepSink) init() error {
	rate := assets.DefaultSampleRate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	s.enabled = true
	return nil
}

func (s *beepSink) close() {
	if s.enabled {
		speaker.Clear()
		speaker.Close()
		s.enabled = false
	}
}

// RequestPlay 实现 game.AssetSink
func (s *beepSink) RequestPlay(effectID string) {
	if !s.enabled {
		return
	}
	volume := s.settings.EffectiveVolume()
	if volume <= 0 {
		return
	}
	res, ok := s.resources.Sound(effectID)
	if !ok {
		s.reportMissing(effectID)
		return
	}
	speaker.Play(assets.NewSoundStreamer(res, assets.DefaultSampleRate, volume))
}

// RequestSprite 实现 game.AssetSink
func (s *beepSink) RequestSprite(assetID string) {
	if _, ok := s.resources.Sprite(assetID); !ok {
		s.reportMissing(assetID)
	}
}

func (s *beepSink) reportMissing(id string) {
	if s.missing[id] {
		return
	}
	s.missing[id] = true
	log.Printf("[Term] Unknown asset: %s", id)
}

var _ game.AssetSink = (*beepSink)(nil)
