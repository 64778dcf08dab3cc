package service

import (
	"context"
	"errors"
	"testing"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/events"
	evtmocks "github.com/malk-tv/malk/internal/events/mocks"
	"github.com/malk-tv/malk/internal/repository"
	repomocks "github.com/malk-tv/malk/internal/repository/mocks"
	"github.com/malk-tv/malk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRelationshipService_ToggleFollow(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) (repository.UserRepository,
			repository.RelationshipRepository, events.Producer)

		followerID string
		followeeID string

		wantFollowing bool
		wantErr       error
	}{
		{
			name: "从未关注到关注，并且发出事件",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.RelationshipRepository, events.Producer) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				follower := domain.User{ID: "u1", Following: []string{"u9"}}
				followee := domain.User{ID: "u2"}
				userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(follower, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), "u2").Return(followee, nil)
				relRepo := repomocks.NewMockRelationshipRepository(ctrl)
				relRepo.EXPECT().AddFollow(gomock.Any(), follower, followee).
					Return(nil)
				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProduceRelationshipEvent(gomock.Any(),
					events.RelationshipEvent{
						Type: events.TypeFollow,
						Metadata: map[string]string{
							"follower": "u1",
							"followee": "u2",
						},
					}).Return(nil)
				return userRepo, relRepo, producer
			},
			followerID:    "u1",
			followeeID:    "u2",
			wantFollowing: true,
		},
		{
			name: "已经关注了，再点一次就是取关，不发事件",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.RelationshipRepository, events.Producer) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				follower := domain.User{ID: "u1", Following: []string{"u2"}}
				followee := domain.User{ID: "u2", FollowedBy: []string{"u1"}}
				userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(follower, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), "u2").Return(followee, nil)
				relRepo := repomocks.NewMockRelationshipRepository(ctrl)
				relRepo.EXPECT().RemoveFollow(gomock.Any(), follower, followee).
					Return(nil)
				producer := evtmocks.NewMockProducer(ctrl)
				return userRepo, relRepo, producer
			},
			followerID:    "u1",
			followeeID:    "u2",
			wantFollowing: false,
		},
		{
			name: "部分写入只记日志，操作照样算成功",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.RelationshipRepository, events.Producer) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				follower := domain.User{ID: "u1"}
				followee := domain.User{ID: "u2"}
				userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(follower, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), "u2").Return(followee, nil)
				relRepo := repomocks.NewMockRelationshipRepository(ctrl)
				relRepo.EXPECT().AddFollow(gomock.Any(), follower, followee).
					Return(domain.ErrPartialMutation)
				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProduceRelationshipEvent(gomock.Any(), gomock.Any()).
					Return(nil)
				return userRepo, relRepo, producer
			},
			followerID:    "u1",
			followeeID:    "u2",
			wantFollowing: true,
		},
		{
			name: "事件发送失败不影响关注本身",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.RelationshipRepository, events.Producer) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				follower := domain.User{ID: "u1"}
				followee := domain.User{ID: "u2"}
				userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(follower, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), "u2").Return(followee, nil)
				relRepo := repomocks.NewMockRelationshipRepository(ctrl)
				relRepo.EXPECT().AddFollow(gomock.Any(), follower, followee).
					Return(nil)
				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProduceRelationshipEvent(gomock.Any(), gomock.Any()).
					Return(errors.New("kafka 挂了"))
				return userRepo, relRepo, producer
			},
			followerID:    "u1",
			followeeID:    "u2",
			wantFollowing: true,
		},
		{
			name: "关注自己，直接拒绝",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.RelationshipRepository, events.Producer) {
				return repomocks.NewMockUserRepository(ctrl),
					repomocks.NewMockRelationshipRepository(ctrl),
					evtmocks.NewMockProducer(ctrl)
			},
			followerID: "u1",
			followeeID: "u1",
			wantErr:    domain.ErrInvalidInput,
		},
		{
			name: "目标用户不存在",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.RelationshipRepository, events.Producer) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				userRepo.EXPECT().FindByID(gomock.Any(), "u1").
					Return(domain.User{ID: "u1"}, nil).AnyTimes()
				userRepo.EXPECT().FindByID(gomock.Any(), "u404").
					Return(domain.User{}, domain.ErrNotFound)
				return userRepo, repomocks.NewMockRelationshipRepository(ctrl),
					evtmocks.NewMockProducer(ctrl)
			},
			followerID: "u1",
			followeeID: "u404",
			wantErr:    domain.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			userRepo, relRepo, producer := tc.mock(ctrl)
			svc := NewRelationshipService(userRepo, relRepo, producer, logger.NewNopLogger())
			following, err := svc.ToggleFollow(context.Background(), tc.followerID, tc.followeeID)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantFollowing, following)
		})
	}
}

func TestRelationshipService_ToggleFollow_Involution(t *testing.T) {
	// 连着切换两次，最后一定回到没关注的状态
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	userRepo := repomocks.NewMockUserRepository(ctrl)
	relRepo := repomocks.NewMockRelationshipRepository(ctrl)
	producer := evtmocks.NewMockProducer(ctrl)

	// 第一次：还没关注
	userRepo.EXPECT().FindByID(gomock.Any(), "u1").
		Return(domain.User{ID: "u1"}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), "u2").
		Return(domain.User{ID: "u2"}, nil)
	relRepo.EXPECT().AddFollow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().ProduceRelationshipEvent(gomock.Any(), gomock.Any()).Return(nil)
	// 第二次：存储里已经是关注状态
	userRepo.EXPECT().FindByID(gomock.Any(), "u1").
		Return(domain.User{ID: "u1", Following: []string{"u2"}}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), "u2").
		Return(domain.User{ID: "u2", FollowedBy: []string{"u1"}}, nil)
	relRepo.EXPECT().RemoveFollow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc := NewRelationshipService(userRepo, relRepo, producer, logger.NewNopLogger())
	following, err := svc.ToggleFollow(context.Background(), "u1", "u2")
	assert.NoError(t, err)
	assert.True(t, following)
	following, err = svc.ToggleFollow(context.Background(), "u1", "u2")
	assert.NoError(t, err)
	assert.False(t, following)
}
