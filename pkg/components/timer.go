package components

// TimerComponent 生成计时器
// 累加每帧经过的时间，达到 TargetTime 后置为就绪；
// 就绪状态由 SpawnSystem 读取后立即清零重置（无论是否真的生成了实体）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "hazard_spawn"
	TargetTime  float64 // 生成间隔（秒）
	CurrentTime float64 // 当前已累计时间（秒）
	IsReady     bool    // 是否已到期
}
