package media

import (
	"sync"
	"testing"
	"time"

	"github.com/decker502/stardodge/pkg/assets"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 整个测试进程只能创建一个音频上下文
var (
	testAudioContext     *audio.Context
	testAudioContextOnce sync.Once
)

func getTestAudioContext() *audio.Context {
	testAudioContextOnce.Do(func() {
		testAudioContext = audio.NewContext(48000)
	})
	return testAudioContext
}

func testResourceConfig(t *testing.T) *assets.ResourceConfig {
	t.Helper()
	cfg, err := assets.LoadResourceConfig("../../data/resources.yaml")
	if err != nil {
		t.Fatalf("LoadResourceConfig() error: %v", err)
	}
	return cfg
}

func TestAudioManagerPCMCache(t *testing.T) {
	am := NewAudioManager(getTestAudioContext(), testResourceConfig(t), nil)

	pcm, ok := am.PCM(config.SoundPickup)
	if !ok {
		t.Fatal("pickup sound should exist")
	}
	// 120ms，每帧 4 字节
	if want := beep.SampleRate(48000).N(120*time.Millisecond) * 4; len(pcm) != want {
		t.Errorf("pcm length = %d, want %d", len(pcm), want)
	}

	again, _ := am.PCM(config.SoundPickup)
	if &again[0] != &pcm[0] {
		t.Error("PCM should be cached")
	}

	if _, ok := am.PCM("SOUND_MISSING"); ok {
		t.Error("unknown sound should not be found")
	}
}

func TestAudioManagerRespectsSettings(t *testing.T) {
	sm := game.NewSettingsManager(nil)
	am := NewAudioManager(getTestAudioContext(), testResourceConfig(t), sm)

	sm.SetSoundEnabled(false)
	if am.PlaySound(config.SoundExplosion) {
		t.Error("sound disabled: PlaySound should return false")
	}

	sm.SetSoundEnabled(true)
	if am.PlaySound("SOUND_MISSING") {
		t.Error("unknown sound: PlaySound should return false")
	}
}

func TestResourceManagerSprites(t *testing.T) {
	rm := NewResourceManager(testResourceConfig(t))

	if rm.GetSprite(config.SpritePlayer) != nil {
		t.Error("sprite should not be cached before request")
	}
	rm.RequestSprite(config.SpritePlayer)
	img := rm.GetSprite(config.SpritePlayer)
	if img == nil {
		t.Fatal("sprite should be cached after request")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != SpriteResolution || h != SpriteResolution {
		t.Errorf("sprite size = %dx%d", w, h)
	}

	c, ok := rm.SpriteColor(config.SpriteHazard)
	if !ok || c.R != 0xe0 {
		t.Errorf("hazard color = %v, %v", c, ok)
	}

	if _, err := rm.LoadSprite("SPRITE_MISSING"); err == nil {
		t.Error("unknown sprite should fail")
	}
}

func TestSinkNilSafe(t *testing.T) {
	var s game.AssetSink = Sink{}
	s.RequestPlay(config.SoundPickup)
	s.RequestSprite(config.SpritePickup)
}
