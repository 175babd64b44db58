package systems

import (
	"github.com/decker502/stardodge/pkg/utils"
)

// recordingSink 记录所有资源请求
type recordingSink struct {
	played  []string
	sprites []string
}

func (s *recordingSink) RequestPlay(id string)   { s.played = append(s.played, id) }
func (s *recordingSink) RequestSprite(id string) { s.sprites = append(s.sprites, id) }

func (s *recordingSink) count(id string) int {
	n := 0
	for _, p := range s.played {
		if p == id {
			n++
		}
	}
	return n
}

// fixedRandom 返回固定的方向和比例
// InRange 返回 max*fraction
type fixedRandom struct {
	direction utils.Vec2
	fraction  float64
}

func (r fixedRandom) UnitVector() utils.Vec2      { return r.direction }
func (r fixedRandom) InRange(max float64) float64 { return max * r.fraction }

func newFixedRandom() fixedRandom {
	return fixedRandom{direction: utils.Vec2{X: 1}, fraction: 0.25}
}
