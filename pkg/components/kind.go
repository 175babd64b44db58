package components

// EntityKind 实体类别标签
// 每个实体只属于一个类别，碰撞半径、生成规则都按类别区分
type EntityKind int

const (
	KindPlayer EntityKind = iota // 玩家（单例，最多一个）
	KindHazard                   // 危险物：移动、撞墙反弹，碰到玩家结束本局
	KindPickup                   // 拾取物：静止，被玩家碰到后移除并加分
)

// String 返回类别名称，用于日志
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindHazard:
		return "hazard"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// AllKinds 按固定顺序列出所有类别
var AllKinds = []EntityKind{KindPlayer, KindHazard, KindPickup}
