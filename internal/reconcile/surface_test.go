package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_ObserveInserted(t *testing.T) {
	fetcher := &fakeFetcher{liked: []string{"p1"}, followed: []string{"u2"}}
	bus := NewBus()
	state := NewViewerState("u1", fetcher, bus)
	require.NoError(t, state.Load(context.Background()))

	var applied []Decoration
	s := NewSurface("feed", state, bus, func(d Decoration) {
		applied = append(applied, d)
	})

	s.ObserveInserted([]Item{
		{Kind: ToggleKindLike, TargetID: "p1"},
		{Kind: ToggleKindLike, TargetID: "p2"},
	})
	require.Len(t, applied, 2)
	assert.True(t, applied[0].Active)
	assert.False(t, applied[1].Active)

	// 又滚出来一批，只装饰新的这批，老的不重复处理
	applied = nil
	s.ObserveInserted([]Item{
		{Kind: ToggleKindFollow, TargetID: "u2"},
	})
	require.Len(t, applied, 1)
	assert.Equal(t, "u2", applied[0].Item.TargetID)
	assert.True(t, applied[0].Active)
}

func TestSurface_OnToggle(t *testing.T) {
	fetcher := &fakeFetcher{}
	bus := NewBus()
	state := NewViewerState("u1", fetcher, bus)

	var applied []Decoration
	s := NewSurface("feed", state, bus, func(d Decoration) {
		applied = append(applied, d)
	})
	s.ObserveInserted([]Item{
		{Kind: ToggleKindLike, TargetID: "p1"},
	})
	applied = nil

	// 在屏的元素，变更过来要刷
	state.ApplyToggle(ToggleEvent{Kind: ToggleKindLike, TargetID: "p1", Active: true})
	require.Len(t, applied, 1)
	assert.True(t, applied[0].Active)

	// 不在屏的元素不关心
	applied = nil
	state.ApplyToggle(ToggleEvent{Kind: ToggleKindLike, TargetID: "p99", Active: true})
	assert.Empty(t, applied)
}

func TestSurface_Refresh_StaleGuard(t *testing.T) {
	fetcher := &fakeFetcher{liked: []string{"p1"}}
	bus := NewBus()
	state := NewViewerState("u1", fetcher, bus)

	var applied []Decoration
	s := NewSurface("feed", state, bus, func(d Decoration) {
		applied = append(applied, d)
	})
	s.ObserveInserted([]Item{
		{Kind: ToggleKindLike, TargetID: "p1"},
	})
	applied = nil

	// 正常刷新，在屏元素重刷一遍
	require.NoError(t, s.Refresh(context.Background()))
	require.Len(t, applied, 1)
	assert.True(t, applied[0].Active)

	// 加载还在途中用户就导航走了，回来的结果要整个丢掉
	applied = nil
	fetcher.onFetch = func() {
		s.Close(bus)
	}
	require.NoError(t, s.Refresh(context.Background()))
	assert.Empty(t, applied)
}

func TestSurface_Close_Unsubscribes(t *testing.T) {
	fetcher := &fakeFetcher{}
	bus := NewBus()
	state := NewViewerState("u1", fetcher, bus)

	var applied []Decoration
	s := NewSurface("feed", state, bus, func(d Decoration) {
		applied = append(applied, d)
	})
	s.ObserveInserted([]Item{
		{Kind: ToggleKindLike, TargetID: "p1"},
	})
	applied = nil

	s.Close(bus)
	bus.Publish(ToggleEvent{Kind: ToggleKindLike, TargetID: "p1", Active: true})
	assert.Empty(t, applied)
}

func TestBuildLikeBadge(t *testing.T) {
	testCases := []struct {
		name  string
		count int64
		want  LikeBadge
	}{
		{
			name:  "0 的时候整个隐藏，不显示 0 likes",
			count: 0,
			want:  LikeBadge{Count: 0, Visible: false},
		},
		{
			name:  "1 用单数",
			count: 1,
			want:  LikeBadge{Count: 1, Visible: true, Label: "like"},
		},
		{
			name:  "多个用复数",
			count: 42,
			want:  LikeBadge{Count: 42, Visible: true, Label: "likes"},
		},
		{
			name:  "负数当 0 处理",
			count: -1,
			want:  LikeBadge{Count: 0, Visible: false},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildLikeBadge(tc.count))
		})
	}
}
