package reconcile

import (
	"context"
	"sync"

	"github.com/ecodeclub/ekit/syncx/atomicx"
)

// Item 界面上一个带点赞/关注态的元素
type Item struct {
	Kind     ToggleKind
	TargetID string
}

// Decoration 一个元素该渲染成什么样
type Decoration struct {
	Item   Item
	Active bool
}

// Surface 一个在屏的界面，比如一条无限滚动的 feed
// 它只维护自己可见的元素集合，新插入多少条就处理多少条，
// 代价是 O(新元素)，而不是每次都全量扫一遍
type Surface struct {
	id    string
	state *ViewerState
	// apply 把装饰结果交给渲染方
	apply func(d Decoration)
	// gen 代际号，界面导航走了就递增，老的加载结果按代际号丢弃
	gen   *atomicx.Value[int64]
	subID int

	mu    sync.Mutex
	items map[string]ToggleKind
}

func NewSurface(id string, state *ViewerState, bus *Bus, apply func(d Decoration)) *Surface {
	s := &Surface{
		id:    id,
		state: state,
		apply: apply,
		gen:   atomicx.NewValueOf[int64](0),
		items: make(map[string]ToggleKind),
	}
	s.subID = bus.Subscribe(s.onToggle)
	return s
}

// ObserveInserted 观察到新插入的元素
// 只把缓存的成员集合应用到这些新元素上，老元素不动
func (s *Surface) ObserveInserted(items []Item) {
	s.mu.Lock()
	for _, item := range items {
		s.items[item.TargetID] = item.Kind
	}
	s.mu.Unlock()
	for _, item := range items {
		s.apply(Decoration{
			Item:   item,
			Active: s.active(item),
		})
	}
}

// Refresh 整体回源一次，在屏的元素全部重刷
// 加载期间用户导航走了的话，结果直接丢弃，不能刷到一个已经不在的界面上
func (s *Surface) Refresh(ctx context.Context) error {
	gen := s.gen.Load()
	err := s.state.Load(ctx)
	if err != nil {
		return err
	}
	if s.gen.Load() != gen {
		// 界面已经不是发起加载时那个界面了
		return nil
	}
	s.mu.Lock()
	items := make([]Item, 0, len(s.items))
	for id, kind := range s.items {
		items = append(items, Item{Kind: kind, TargetID: id})
	}
	s.mu.Unlock()
	for _, item := range items {
		s.apply(Decoration{
			Item:   item,
			Active: s.active(item),
		})
	}
	return nil
}

// Close 导航离开，退订并让在途的加载结果作废
func (s *Surface) Close(bus *Bus) {
	s.gen.Store(s.gen.Load() + 1)
	bus.Unsubscribe(s.subID)
}

// onToggle 订阅到的变更，只有在屏的元素才需要刷
func (s *Surface) onToggle(evt ToggleEvent) {
	s.mu.Lock()
	kind, ok := s.items[evt.TargetID]
	s.mu.Unlock()
	if !ok || kind != evt.Kind {
		return
	}
	s.apply(Decoration{
		Item:   Item{Kind: evt.Kind, TargetID: evt.TargetID},
		Active: evt.Active,
	})
}

func (s *Surface) active(item Item) bool {
	switch item.Kind {
	case ToggleKindLike:
		return s.state.Liked(item.TargetID)
	case ToggleKindFollow:
		return s.state.Followed(item.TargetID)
	default:
		return false
	}
}
