package reconcile

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Fetcher 从服务端拉当前用户的两个成员集合
type Fetcher interface {
	LikedPostIDs(ctx context.Context, uid string) ([]string, error)
	FollowedUserIDs(ctx context.Context, uid string) ([]string, error)
}

// ViewerState 当前用户"我赞过什么、我关注了谁"的本地缓存
// 页面加载的时候整体拉一次，之后本地变更只改受影响的那一条，
// 不再整体回源。别的 tab、别的会话改了什么这里感知不到，
// 脏到下一次整页加载为止，这是明确接受的取舍，不是漏做了失效。
type ViewerState struct {
	uid     string
	fetcher Fetcher
	bus     *Bus

	mu       sync.RWMutex
	liked    map[string]struct{}
	followed map[string]struct{}
}

func NewViewerState(uid string, fetcher Fetcher, bus *Bus) *ViewerState {
	return &ViewerState{
		uid:      uid,
		fetcher:  fetcher,
		bus:      bus,
		liked:    make(map[string]struct{}),
		followed: make(map[string]struct{}),
	}
}

// Load 两个集合并行拉，任何一个失败整次加载算失败
func (s *ViewerState) Load(ctx context.Context) error {
	var (
		eg       errgroup.Group
		liked    []string
		followed []string
	)
	eg.Go(func() error {
		var err error
		liked, err = s.fetcher.LikedPostIDs(ctx, s.uid)
		return err
	})
	eg.Go(func() error {
		var err error
		followed, err = s.fetcher.FollowedUserIDs(ctx, s.uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked = make(map[string]struct{}, len(liked))
	for _, id := range liked {
		s.liked[id] = struct{}{}
	}
	s.followed = make(map[string]struct{}, len(followed))
	for _, id := range followed {
		s.followed[id] = struct{}{}
	}
	return nil
}

func (s *ViewerState) Liked(postID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.liked[postID]
	return ok
}

func (s *ViewerState) Followed(uid string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.followed[uid]
	return ok
}

// ApplyToggle 一次 toggle 成功之后调用，只动受影响的那一条
// 然后把事件发出去，订阅了的界面自己去刷自己的按钮
func (s *ViewerState) ApplyToggle(evt ToggleEvent) {
	s.mu.Lock()
	var m map[string]struct{}
	switch evt.Kind {
	case ToggleKindLike:
		m = s.liked
	case ToggleKindFollow:
		m = s.followed
	default:
		s.mu.Unlock()
		return
	}
	if evt.Active {
		m[evt.TargetID] = struct{}{}
	} else {
		delete(m, evt.TargetID)
	}
	s.mu.Unlock()
	s.bus.Publish(evt)
}
