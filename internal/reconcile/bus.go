package reconcile

import "sync"

type ToggleKind string

const (
	ToggleKindLike   ToggleKind = "like"
	ToggleKindFollow ToggleKind = "follow"
)

// ToggleEvent 一次本地变更的结果，以服务端的回包为准
type ToggleEvent struct {
	Kind     ToggleKind
	TargetID string
	// Active 变更之后是不是处于点赞/关注状态
	Active bool
}

// Bus 显式的发布订阅
// 以前的做法是往全局挂一个"刷新所有按钮"的回调，谁都能调，
// 谁调的、刷了什么完全说不清楚。现在变更发布出来，关心的界面各自订阅。
// 派发是同步的，每个 tab 本来就是单线程协作模型
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(evt ToggleEvent)
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[int]func(evt ToggleEvent)),
	}
}

// Subscribe 返回的 id 用来退订
func (b *Bus) Subscribe(fn func(evt ToggleEvent)) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs[id] = fn
	return id
}

func (b *Bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
}

func (b *Bus) Publish(evt ToggleEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, fn := range b.subs {
		fn(evt)
	}
}
