// Package utils 提供模拟核心使用的通用工具：二维向量、随机源与输入快照
package utils

import "math"

// Vec2 二维向量，用于位置、方向
type Vec2 struct {
	X, Y float64
}

// Zero 零向量
var Zero = Vec2{}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 返回 v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg 返回反向向量
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Length 返回向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回单位向量
// 零向量返回零向量（无输入时不产生漂移）
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance 返回两点之间的欧氏距离
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Length()
}

// Clamp 将 value 限制在 [min, max] 范围内
// 当 min > max（区域比实体还小）时返回区间中点
func Clamp(value, min, max float64) float64 {
	if min > max {
		return (min + max) / 2
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
