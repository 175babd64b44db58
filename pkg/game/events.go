package game

// GameOverEvent 玩家死亡时发出的瞬时消息
// 携带死亡瞬间的得分；当帧内被每个监听者恰好处理一次，不持久化
type GameOverEvent struct {
	Score uint32
}

// GameOverListener 游戏结束事件监听者
type GameOverListener func(GameOverEvent)

// EventBus 单线程事件队列
//
// Publish 只追加到待处理列表；Dispatch 每帧调用一次，把每个待处理事件
// 交给每个监听者各一次，然后清空列表。监听者之间的调用顺序不作保证。
type EventBus struct {
	pending   []GameOverEvent
	listeners []GameOverListener
}

// NewEventBus 创建事件队列
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe 注册监听者
func (b *EventBus) Subscribe(l GameOverListener) {
	b.listeners = append(b.listeners, l)
}

// Publish 追加一个待处理事件
func (b *EventBus) Publish(e GameOverEvent) {
	b.pending = append(b.pending, e)
}

// Pending 返回待处理事件数量
func (b *EventBus) Pending() int {
	return len(b.pending)
}

// Dispatch 分发所有待处理事件并返回分发数量
// 监听者在处理中发布的新事件留到下一次 Dispatch
func (b *EventBus) Dispatch() int {
	if len(b.pending) == 0 {
		return 0
	}
	events := b.pending
	b.pending = nil
	for _, e := range events {
		for _, l := range b.listeners {
			l(e)
		}
	}
	return len(events)
}
