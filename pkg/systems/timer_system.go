package systems

import "github.com/decker502/stardodge/pkg/components"

// NewSpawnTimer 创建生成计时器
func NewSpawnTimer(name string, interval float64) *components.TimerComponent {
	return &components.TimerComponent{
		Name:       name,
		TargetTime: interval,
	}
}

// TickTimer 累加经过时间，达到间隔后置为就绪
// 已就绪的计时器继续累加，直到被 ConsumeTimer 读取
func TickTimer(timer *components.TimerComponent, deltaTime float64) {
	if deltaTime > 0 {
		timer.CurrentTime += deltaTime
	}
	if timer.CurrentTime >= timer.TargetTime {
		timer.IsReady = true
	}
}

// ConsumeTimer 读取就绪状态；一旦读取到就绪，立即清零并清除就绪标志
func ConsumeTimer(timer *components.TimerComponent) bool {
	if !timer.IsReady {
		return false
	}
	ResetTimer(timer)
	return true
}

// ResetTimer 清零计时器
func ResetTimer(timer *components.TimerComponent) {
	timer.CurrentTime = 0
	timer.IsReady = false
}
