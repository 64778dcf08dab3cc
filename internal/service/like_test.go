package service

import (
	"context"
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

func TestLikeService_ToggleLike(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) (repository.UserRepository,
			repository.PostRepository, events.Producer)

		uid    string
		postID string

		wantLiked bool
		wantCnt   int64
		wantErr   error
	}{
		{
			name: "点赞成功，返回的计数跟着涨",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.PostRepository, events.Producer) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				user := domain.User{ID: "u1"}
				post := domain.Post{ID: "p1", OwnerID: "u2",
					Likes: []string{"u3"}, LikeCount: 1}
				userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(user, nil)
				postRepo := repomocks.NewMockPostRepository(ctrl)
				postRepo.EXPECT().FindByID(gomock.Any(), "p1").Return(post, nil)
				postRepo.EXPECT().AddLike(gomock.Any(), user, post).
					Return(int64(2), nil)
				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProduceRelationshipEvent(gomock.Any(),
					events.RelationshipEvent{
						Type: events.TypeLike,
						Metadata: map[string]string{
							"liker":  "u1",
							"owner":  "u2",
							"postId": "p1",
						},
					}).Return(nil)
				return userRepo, postRepo, producer
			},
			uid:       "u1",
			postID:    "p1",
			wantLiked: true,
			wantCnt:   2,
		},
		{
			name: "已经赞过了，再点一次是取消，不发事件",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.PostRepository, events.Producer) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				user := domain.User{ID: "u1", LikedPosts: []string{"p1"}}
				post := domain.Post{ID: "p1", OwnerID: "u2",
					Likes: []string{"u1"}, LikeCount: 1}
				userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(user, nil)
				postRepo := repomocks.NewMockPostRepository(ctrl)
				postRepo.EXPECT().FindByID(gomock.Any(), "p1").Return(post, nil)
				postRepo.EXPECT().RemoveLike(gomock.Any(), user, post).
					Return(int64(0), nil)
				producer := evtmocks.NewMockProducer(ctrl)
				return userRepo, postRepo, producer
			},
			uid:       "u1",
			postID:    "p1",
			wantLiked: false,
			wantCnt:   0,
		},
		{
			name: "自己赞自己的帖子，计数照常涨，事件照常发",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.PostRepository, events.Producer) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				user := domain.User{ID: "u1"}
				post := domain.Post{ID: "p1", OwnerID: "u1"}
				userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(user, nil)
				postRepo := repomocks.NewMockPostRepository(ctrl)
				postRepo.EXPECT().FindByID(gomock.Any(), "p1").Return(post, nil)
				postRepo.EXPECT().AddLike(gomock.Any(), user, post).
					Return(int64(1), nil)
				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProduceRelationshipEvent(gomock.Any(),
					events.RelationshipEvent{
						Type: events.TypeLike,
						Metadata: map[string]string{
							"liker":  "u1",
							"owner":  "u1",
							"postId": "p1",
						},
					}).Return(nil)
				return userRepo, postRepo, producer
			},
			uid:       "u1",
			postID:    "p1",
			wantLiked: true,
			wantCnt:   1,
		},
		{
			name: "部分写入只记日志，计数以帖子侧为准",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.PostRepository, events.Producer) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				user := domain.User{ID: "u1"}
				post := domain.Post{ID: "p1", OwnerID: "u2"}
				userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(user, nil)
				postRepo := repomocks.NewMockPostRepository(ctrl)
				postRepo.EXPECT().FindByID(gomock.Any(), "p1").Return(post, nil)
				postRepo.EXPECT().AddLike(gomock.Any(), user, post).
					Return(int64(1), domain.ErrPartialMutation)
				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProduceRelationshipEvent(gomock.Any(), gomock.Any()).
					Return(nil)
				return userRepo, postRepo, producer
			},
			uid:       "u1",
			postID:    "p1",
			wantLiked: true,
			wantCnt:   1,
		},
		{
			name: "参数为空，直接拒绝",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.PostRepository, events.Producer) {
				return repomocks.NewMockUserRepository(ctrl),
					repomocks.NewMockPostRepository(ctrl),
					evtmocks.NewMockProducer(ctrl)
			},
			uid:     "",
			postID:  "p1",
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			userRepo, postRepo, producer := tc.mock(ctrl)
			svc := NewLikeService(userRepo, postRepo, producer, logger.NewNopLogger())
			liked, cnt, err := svc.ToggleLike(context.Background(), tc.uid, tc.postID)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantLiked, liked)
			assert.Equal(t, tc.wantCnt, cnt)
		})
	}
}
