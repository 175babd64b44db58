package utils

import (
	"math"
	"math/rand"
)

// Random 基于 math/rand 的随机源
// 实现 game.RandomSource，固定种子时生成序列可复现（用于测试和无头模拟）
type Random struct {
	rng *rand.Rand
}

// NewRandom 使用指定种子创建随机源
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// UnitVector 返回均匀分布方向上的单位向量
func (r *Random) UnitVector() Vec2 {
	angle := r.rng.Float64() * 2 * math.Pi
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// InRange 返回 [0, max) 内均匀分布的随机数
// max <= 0 时返回 0
func (r *Random) InRange(max float64) float64 {
	if max <= 0 {
		return 0
	}
	return r.rng.Float64() * max
}
