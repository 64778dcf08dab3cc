package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository/cache"
	cachemocks "github.com/malk-tv/malk/internal/repository/cache/mocks"
	"github.com/malk-tv/malk/internal/repository/dao"
	daomocks "github.com/malk-tv/malk/internal/repository/dao/mocks"
	"github.com/malk-tv/malk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedRelationshipRepository_AddFollow(t *testing.T) {
	follower := domain.User{ID: "u1", Following: []string{"u9"}}
	followee := domain.User{ID: "u2", FollowedBy: []string{"u9"}}

	t.Run("先写操作者的 Following，再写对方的 FollowedBy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := daomocks.NewMockUserDAO(ctrl)
		first := d.EXPECT().UpdateFollowing(gomock.Any(), "u1",
			[]string{"u9", "u2"}).Return(nil)
		d.EXPECT().UpdateFollowedBy(gomock.Any(), "u2",
			[]string{"u9", "u1"}).Return(nil).After(first)
		c := cachemocks.NewMockFollowCache(ctrl)
		c.EXPECT().Follow(gomock.Any(), "u1", "u2").Return(nil)

		repo := NewCachedRelationshipRepository(d, c, logger.NewNopLogger())
		err := repo.AddFollow(context.Background(), follower, followee)
		assert.NoError(t, err)
	})

	t.Run("第一侧就失败，原样报错，不碰第二侧", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := daomocks.NewMockUserDAO(ctrl)
		d.EXPECT().UpdateFollowing(gomock.Any(), "u1", gomock.Any()).
			Return(domain.ErrUpstreamUnavailable)
		c := cachemocks.NewMockFollowCache(ctrl)

		repo := NewCachedRelationshipRepository(d, c, logger.NewNopLogger())
		err := repo.AddFollow(context.Background(), follower, followee)
		assert.Equal(t, domain.ErrUpstreamUnavailable, err)
		assert.False(t, errors.Is(err, domain.ErrPartialMutation))
	})

	t.Run("第二侧失败算部分写入", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := daomocks.NewMockUserDAO(ctrl)
		d.EXPECT().UpdateFollowing(gomock.Any(), "u1", gomock.Any()).
			Return(nil)
		d.EXPECT().UpdateFollowedBy(gomock.Any(), "u2", gomock.Any()).
			Return(domain.ErrUpstreamUnavailable)
		c := cachemocks.NewMockFollowCache(ctrl)

		repo := NewCachedRelationshipRepository(d, c, logger.NewNopLogger())
		err := repo.AddFollow(context.Background(), follower, followee)
		assert.ErrorIs(t, err, domain.ErrPartialMutation)
	})

	t.Run("缓存失败不影响结果", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := daomocks.NewMockUserDAO(ctrl)
		d.EXPECT().UpdateFollowing(gomock.Any(), "u1", gomock.Any()).Return(nil)
		d.EXPECT().UpdateFollowedBy(gomock.Any(), "u2", gomock.Any()).Return(nil)
		c := cachemocks.NewMockFollowCache(ctrl)
		c.EXPECT().Follow(gomock.Any(), "u1", "u2").
			Return(errors.New("redis 挂了"))

		repo := NewCachedRelationshipRepository(d, c, logger.NewNopLogger())
		err := repo.AddFollow(context.Background(), follower, followee)
		assert.NoError(t, err)
	})
}

func TestCachedRelationshipRepository_RemoveFollow(t *testing.T) {
	follower := domain.User{ID: "u1", Following: []string{"u2", "u9"}}
	followee := domain.User{ID: "u2", FollowedBy: []string{"u1", "u9"}}

	t.Run("取消的时候反过来，先删对方那一侧", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := daomocks.NewMockUserDAO(ctrl)
		first := d.EXPECT().UpdateFollowedBy(gomock.Any(), "u2",
			[]string{"u9"}).Return(nil)
		d.EXPECT().UpdateFollowing(gomock.Any(), "u1",
			[]string{"u9"}).Return(nil).After(first)
		c := cachemocks.NewMockFollowCache(ctrl)
		c.EXPECT().CancelFollow(gomock.Any(), "u1", "u2").Return(nil)

		repo := NewCachedRelationshipRepository(d, c, logger.NewNopLogger())
		err := repo.RemoveFollow(context.Background(), follower, followee)
		assert.NoError(t, err)
	})

	t.Run("第二侧失败算部分写入", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := daomocks.NewMockUserDAO(ctrl)
		d.EXPECT().UpdateFollowedBy(gomock.Any(), "u2", gomock.Any()).Return(nil)
		d.EXPECT().UpdateFollowing(gomock.Any(), "u1", gomock.Any()).
			Return(domain.ErrUpstreamUnavailable)
		c := cachemocks.NewMockFollowCache(ctrl)

		repo := NewCachedRelationshipRepository(d, c, logger.NewNopLogger())
		err := repo.RemoveFollow(context.Background(), follower, followee)
		assert.ErrorIs(t, err, domain.ErrPartialMutation)
	})
}

func TestCachedRelationshipRepository_Remirror(t *testing.T) {
	testCases := []struct {
		name string
		u    domain.User
		peer domain.User
		mock func(ctrl *gomock.Controller) *daomocks.MockUserDAO
	}{
		{
			name: "对方缺一条反向边，补上",
			u:    domain.User{ID: "u1", Following: []string{"u2"}},
			peer: domain.User{ID: "u2"},
			mock: func(ctrl *gomock.Controller) *daomocks.MockUserDAO {
				d := daomocks.NewMockUserDAO(ctrl)
				d.EXPECT().UpdateFollowedBy(gomock.Any(), "u2",
					[]string{"u1"}).Return(nil)
				return d
			},
		},
		{
			name: "对方多一条脏的反向边，删掉",
			u:    domain.User{ID: "u1"},
			peer: domain.User{ID: "u2", FollowedBy: []string{"u1", "u9"}},
			mock: func(ctrl *gomock.Controller) *daomocks.MockUserDAO {
				d := daomocks.NewMockUserDAO(ctrl)
				d.EXPECT().UpdateFollowedBy(gomock.Any(), "u2",
					[]string{"u9"}).Return(nil)
				return d
			},
		},
		{
			name: "两边本来就一致，什么都不写",
			u:    domain.User{ID: "u1", Following: []string{"u2"}},
			peer: domain.User{ID: "u2", FollowedBy: []string{"u1"}},
			mock: func(ctrl *gomock.Controller) *daomocks.MockUserDAO {
				return daomocks.NewMockUserDAO(ctrl)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedRelationshipRepository(tc.mock(ctrl),
				cachemocks.NewMockFollowCache(ctrl), logger.NewNopLogger())
			err := repo.Remirror(context.Background(), tc.u, tc.peer)
			assert.NoError(t, err)
		})
	}
}

func TestCachedRelationshipRepository_GetFollowStatics(t *testing.T) {
	t.Run("缓存命中走快路径", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := daomocks.NewMockUserDAO(ctrl)
		c := cachemocks.NewMockFollowCache(ctrl)
		c.EXPECT().StaticsInfo(gomock.Any(), "u1").
			Return(domain.FollowStatics{Followers: 3, Followees: 5}, nil)

		repo := NewCachedRelationshipRepository(d, c, logger.NewNopLogger())
		res, err := repo.GetFollowStatics(context.Background(), "u1")
		assert.NoError(t, err)
		assert.Equal(t, domain.FollowStatics{Followers: 3, Followees: 5}, res)
	})

	t.Run("缓存没中就回源，再写回缓存", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := daomocks.NewMockUserDAO(ctrl)
		d.EXPECT().FindByID(gomock.Any(), "u1").
			Return(dao.User{
				ID:         "u1",
				Following:  []string{"u2", "u3"},
				FollowedBy: []string{"u4"},
			}, nil)
		c := cachemocks.NewMockFollowCache(ctrl)
		c.EXPECT().StaticsInfo(gomock.Any(), "u1").
			Return(domain.FollowStatics{}, cache.ErrKeyNotExist)
		c.EXPECT().SetStaticsInfo(gomock.Any(), "u1",
			domain.FollowStatics{Followers: 1, Followees: 2}).Return(nil)

		repo := NewCachedRelationshipRepository(d, c, logger.NewNopLogger())
		res, err := repo.GetFollowStatics(context.Background(), "u1")
		assert.NoError(t, err)
		assert.Equal(t, domain.FollowStatics{Followers: 1, Followees: 2}, res)
	})
}
