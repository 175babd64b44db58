package ecs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/utils"
)

// 不变量被破坏时返回的错误
// 这些错误属于程序缺陷，调用方应中止当前系统本帧的处理并记录诊断信息
var (
	ErrPlayerExists    = errors.New("player entity already exists")
	ErrDuplicateEntity = errors.New("duplicate entity id")
	ErrMultiplePlayers = errors.New("more than one player entity")
)

// EntityID 是实体的唯一标识符
// 单调递增，删除后不复用，因此迭代过程中删除其他实体不会让已持有的ID失效
type EntityID uint64

// Entity 实体记录
type Entity struct {
	ID        EntityID
	Kind      components.EntityKind
	Position  utils.Vec2
	Direction utils.Vec2 // 单位向量，仅危险物使用
	Speed     float64    // 像素/秒，仅危险物使用（可变）
	Radius    float64    // 碰撞与限位半径（尺寸的一半）
}

// EntityManager 持有所有模拟实体
type EntityManager struct {
	nextID   uint64
	entities map[EntityID]*Entity
	counts   map[components.EntityKind]int
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:   1, // ID从1开始,0保留为无效ID
		entities: make(map[EntityID]*Entity),
		counts:   make(map[components.EntityKind]int),
	}
}

// CreateEntity 创建静止实体（玩家、拾取物）并返回唯一ID
func (em *EntityManager) CreateEntity(kind components.EntityKind, position utils.Vec2, radius float64) (EntityID, error) {
	return em.create(&Entity{
		Kind:     kind,
		Position: position,
		Radius:   radius,
	})
}

// CreateMovingEntity 创建带方向和速度的实体（危险物）
// direction 在写入前归一化
func (em *EntityManager) CreateMovingEntity(kind components.EntityKind, position, direction utils.Vec2, speed, radius float64) (EntityID, error) {
	return em.create(&Entity{
		Kind:      kind,
		Position:  position,
		Direction: direction.Normalize(),
		Speed:     speed,
		Radius:    radius,
	})
}

func (em *EntityManager) create(e *Entity) (EntityID, error) {
	if e.Kind == components.KindPlayer && em.counts[components.KindPlayer] > 0 {
		return 0, ErrPlayerExists
	}

	id := EntityID(em.nextID)
	if _, exists := em.entities[id]; exists {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateEntity, id)
	}
	em.nextID++

	e.ID = id
	em.entities[id] = e
	em.counts[e.Kind]++
	return id, nil
}

// RemoveEntity 立即删除实体
// 实体不存在时返回 false（不是错误，可重复调用）
func (em *EntityManager) RemoveEntity(id EntityID) bool {
	e, exists := em.entities[id]
	if !exists {
		return false
	}
	delete(em.entities, id)
	em.counts[e.Kind]--
	return true
}

// GetEntity 获取实体记录
// 返回的指针可直接修改位置、方向和速度
func (em *EntityManager) GetEntity(id EntityID) (*Entity, bool) {
	e, ok := em.entities[id]
	return e, ok
}

// GetEntitiesOfKind 查询指定类别的所有实体ID
// 结果按ID升序（即创建顺序）排列，是一份快照：遍历期间删除实体是安全的
func (em *EntityManager) GetEntitiesOfKind(kind components.EntityKind) []EntityID {
	result := make([]EntityID, 0, em.counts[kind])
	for id, e := range em.entities {
		if e.Kind == kind {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Count 返回指定类别的存活实体数量
func (em *EntityManager) Count(kind components.EntityKind) int {
	return em.counts[kind]
}

// Len 返回存活实体总数
func (em *EntityManager) Len() int {
	return len(em.entities)
}

// Player 返回玩家实体
// 不存在时返回 (nil, nil)；存在多个时返回 ErrMultiplePlayers
func (em *EntityManager) Player() (*Entity, error) {
	var player *Entity
	for _, e := range em.entities {
		if e.Kind != components.KindPlayer {
			continue
		}
		if player != nil {
			return nil, ErrMultiplePlayers
		}
		player = e
	}
	return player, nil
}

// Clear 删除所有实体并返回删除数量
// ID 计数器不重置，旧ID在之后的创建中不会被复用
func (em *EntityManager) Clear() int {
	n := len(em.entities)
	em.entities = make(map[EntityID]*Entity)
	em.counts = make(map[components.EntityKind]int)
	return n
}
