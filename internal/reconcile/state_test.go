package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	liked    []string
	followed []string
	err      error
	calls    int
	// onFetch 在拉取途中做点事，模拟加载期间发生的并发变化
	onFetch func()
}

func (f *fakeFetcher) LikedPostIDs(ctx context.Context, uid string) ([]string, error) {
	f.calls++
	if f.onFetch != nil {
		f.onFetch()
	}
	return f.liked, f.err
}

func (f *fakeFetcher) FollowedUserIDs(ctx context.Context, uid string) ([]string, error) {
	return f.followed, f.err
}

func TestViewerState_Load(t *testing.T) {
	t.Run("两个集合并行拉齐", func(t *testing.T) {
		fetcher := &fakeFetcher{
			liked:    []string{"p1", "p2"},
			followed: []string{"u2"},
		}
		s := NewViewerState("u1", fetcher, NewBus())
		require.NoError(t, s.Load(context.Background()))
		assert.True(t, s.Liked("p1"))
		assert.True(t, s.Liked("p2"))
		assert.False(t, s.Liked("p3"))
		assert.True(t, s.Followed("u2"))
		assert.False(t, s.Followed("u3"))
	})

	t.Run("任何一个拉不下来整次加载失败", func(t *testing.T) {
		fetcher := &fakeFetcher{err: errors.New("网络不行")}
		s := NewViewerState("u1", fetcher, NewBus())
		assert.Error(t, s.Load(context.Background()))
	})
}

func TestViewerState_ApplyToggle(t *testing.T) {
	fetcher := &fakeFetcher{liked: []string{"p1"}}
	bus := NewBus()
	s := NewViewerState("u1", fetcher, bus)
	require.NoError(t, s.Load(context.Background()))

	var got []ToggleEvent
	bus.Subscribe(func(evt ToggleEvent) {
		got = append(got, evt)
	})

	// 本地变更只动受影响的那一条，不回源
	loadCalls := fetcher.calls
	s.ApplyToggle(ToggleEvent{Kind: ToggleKindLike, TargetID: "p2", Active: true})
	assert.True(t, s.Liked("p2"))
	assert.True(t, s.Liked("p1"))
	s.ApplyToggle(ToggleEvent{Kind: ToggleKindLike, TargetID: "p1", Active: false})
	assert.False(t, s.Liked("p1"))
	s.ApplyToggle(ToggleEvent{Kind: ToggleKindFollow, TargetID: "u2", Active: true})
	assert.True(t, s.Followed("u2"))
	assert.Equal(t, loadCalls, fetcher.calls)

	// 每次变更都发布了事件
	assert.Len(t, got, 3)
	assert.Equal(t, ToggleEvent{Kind: ToggleKindLike, TargetID: "p2", Active: true}, got[0])
}
