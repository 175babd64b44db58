// Package media 是 ebiten 前端的资源层：精灵缓存和音效播放
//
// 两个管理器一起实现 game.AssetSink（见 Sink），模拟核心通过它发出
// 即发即忘的资源请求。
package media

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/stardodge/pkg/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteResolution 精灵贴图边长（像素）
// 绘制时按实体半径缩放
const SpriteResolution = 128

// ResourceManager 精灵缓存
//
// 精灵是按资源配置绘制的纯色圆形，第一次请求时生成并缓存。
// 非线程安全，只在游戏循环中使用。
type ResourceManager struct {
	config      *assets.ResourceConfig
	spriteCache map[string]*ebiten.Image
	colorCache  map[string]color.RGBA
}

// NewResourceManager 创建资源管理器
func NewResourceManager(cfg *assets.ResourceConfig) *ResourceManager {
	return &ResourceManager{
		config:      cfg,
		spriteCache: make(map[string]*ebiten.Image),
		colorCache:  make(map[string]color.RGBA),
	}
}

// RequestSprite 确保精灵已生成（AssetSink 的精灵部分）
// 未知ID只记录警告
func (rm *ResourceManager) RequestSprite(id string) {
	if _, err := rm.LoadSprite(id); err != nil {
		log.Printf("[ResourceManager] Warning: %v", err)
	}
}

// LoadSprite 返回精灵贴图，未缓存时生成
func (rm *ResourceManager) LoadSprite(id string) (*ebiten.Image, error) {
	if img, ok := rm.spriteCache[id]; ok {
		return img, nil
	}

	res, ok := rm.config.Sprite(id)
	if !ok {
		return nil, fmt.Errorf("sprite not found: %s", id)
	}
	fill, err := assets.ParseColor(res.Color)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", id, err)
	}

	img := ebiten.NewImage(SpriteResolution, SpriteResolution)
	half := float32(SpriteResolution) / 2
	vector.DrawFilledCircle(img, half, half, half, fill, true)
	if res.Outline != "" {
		if outline, err := assets.ParseColor(res.Outline); err == nil {
			vector.StrokeCircle(img, half, half, half-3, 6, outline, true)
		}
	}

	rm.spriteCache[id] = img
	rm.colorCache[id] = fill
	log.Printf("[ResourceManager] Sprite %s generated (%s)", id, res.Color)
	return img, nil
}

// GetSprite 返回已缓存的精灵，未生成时返回 nil
func (rm *ResourceManager) GetSprite(id string) *ebiten.Image {
	return rm.spriteCache[id]
}

// SpriteColor 精灵主色（用于不画贴图时的回退绘制）
func (rm *ResourceManager) SpriteColor(id string) (color.RGBA, bool) {
	if c, ok := rm.colorCache[id]; ok {
		return c, true
	}
	res, ok := rm.config.Sprite(id)
	if !ok {
		return color.RGBA{}, false
	}
	c, err := assets.ParseColor(res.Color)
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}

// PreloadSprites 预生成全部精灵
func (rm *ResourceManager) PreloadSprites() error {
	for _, s := range rm.config.Sprites {
		if _, err := rm.LoadSprite(s.ID); err != nil {
			return err
		}
	}
	log.Printf("[ResourceManager] Preloaded %d sprites", len(rm.config.Sprites))
	return nil
}
