package game

import "github.com/decker502/stardodge/pkg/utils"

// RandomSource 随机位置/方向来源
// utils.Random 是默认实现；测试中可替换为固定序列
type RandomSource interface {
	// UnitVector 返回随机单位向量
	UnitVector() utils.Vec2
	// InRange 返回 [0, max) 内的随机数
	InRange(max float64) float64
}

// AssetSink 资源/音频请求接收方
// 请求是即发即忘的：核心不等待结果，也不检查是否成功
type AssetSink interface {
	RequestPlay(effectID string)
	RequestSprite(assetID string)
}

// BoundsProvider 竞技场尺寸来源（通常是窗口大小）
// 每帧查询一次；ok 为 false 表示当前不可用，依赖尺寸的系统本帧跳过
type BoundsProvider interface {
	ArenaSize() (width, height float64, ok bool)
}

// NopAssetSink 丢弃所有请求（无头模拟、测试使用）
type NopAssetSink struct{}

func (NopAssetSink) RequestPlay(string)   {}
func (NopAssetSink) RequestSprite(string) {}

// FixedBounds 固定尺寸的竞技场
type FixedBounds struct {
	Width, Height float64
}

// ArenaSize 实现 BoundsProvider
func (b FixedBounds) ArenaSize() (float64, float64, bool) {
	if b.Width <= 0 || b.Height <= 0 {
		return 0, 0, false
	}
	return b.Width, b.Height, true
}
