package service

import (
	"context"
	"testing"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/events"
	"github.com/malk-tv/malk/internal/repository"
	repomocks "github.com/malk-tv/malk/internal/repository/mocks"
	"github.com/malk-tv/malk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_CreateNotificationEvent(t *testing.T) {
	t.Run("按 type 分发给对应的 handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockNotificationRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), domain.Notification{
			RecipientID: "u2",
			Kind:        domain.NotificationKindNewFollower,
			Payload: map[string]string{
				"actor": "u1",
			},
		}).Return(domain.Notification{ID: "n1"}, nil)
		svc := NewNotificationService(repo, map[string]NotificationHandler{
			events.TypeFollow: NewFollowNotificationHandler(repo),
		})
		err := svc.CreateNotificationEvent(context.Background(),
			events.TypeFollow, map[string]string{
				"follower": "u1",
				"followee": "u2",
			})
		assert.NoError(t, err)
	})

	t.Run("不认识的 type 报错", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockNotificationRepository(ctrl)
		svc := NewNotificationService(repo, map[string]NotificationHandler{})
		err := svc.CreateNotificationEvent(context.Background(),
			"unknown_event", map[string]string{})
		assert.Error(t, err)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) repository.NotificationRepository

		recipient string
		id        string

		wantErr error
	}{
		{
			name: "正常标记已读",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "n1").
					Return(domain.Notification{
						ID:          "n1",
						RecipientID: "u1",
					}, nil)
				repo.EXPECT().MarkRead(gomock.Any(), "n1").Return(nil)
				return repo
			},
			recipient: "u1",
			id:        "n1",
		},
		{
			name: "已经是已读，幂等返回，不再写存储",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "n1").
					Return(domain.Notification{
						ID:          "n1",
						RecipientID: "u1",
						Read:        true,
					}, nil)
				return repo
			},
			recipient: "u1",
			id:        "n1",
		},
		{
			name: "别人的通知，当不存在处理",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "n1").
					Return(domain.Notification{
						ID:          "n1",
						RecipientID: "u2",
					}, nil)
				return repo
			},
			recipient: "u1",
			id:        "n1",
			wantErr:   domain.ErrNotFound,
		},
		{
			name: "参数为空",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				return repomocks.NewMockNotificationRepository(ctrl)
			},
			recipient: "u1",
			id:        "",
			wantErr:   domain.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewNotificationService(tc.mock(ctrl), map[string]NotificationHandler{})
			err := svc.MarkRead(context.Background(), tc.recipient, tc.id)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestLikeNotificationHandler_CreateNotification(t *testing.T) {
	t.Run("别人点赞，通知帖主", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockNotificationRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), domain.Notification{
			RecipientID: "u2",
			Kind:        domain.NotificationKindNewLike,
			Payload: map[string]string{
				"actor":  "u1",
				"postId": "p1",
			},
		}).Return(domain.Notification{ID: "n1"}, nil)
		h := NewLikeNotificationHandler(repo)
		err := h.CreateNotification(context.Background(), map[string]string{
			"liker":  "u1",
			"owner":  "u2",
			"postId": "p1",
		})
		assert.NoError(t, err)
	})

	t.Run("自己赞自己，不生成通知", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		// 不设置任何 Create 的预期，调用了就会失败
		repo := repomocks.NewMockNotificationRepository(ctrl)
		h := NewLikeNotificationHandler(repo)
		err := h.CreateNotification(context.Background(), map[string]string{
			"liker":  "u1",
			"owner":  "u1",
			"postId": "p1",
		})
		assert.NoError(t, err)
	})
}

func TestFeatureNotificationHandler_CreateNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockNotificationRepository(ctrl)
	for _, uid := range []string{"u1", "u2", "u3"} {
		repo.EXPECT().Create(gomock.Any(), domain.Notification{
			RecipientID: uid,
			Kind:        domain.NotificationKindNewFeature,
			Payload: map[string]string{
				"feature": "playlists",
			},
		}).Return(domain.Notification{}, nil)
	}
	h := NewFeatureNotificationHandler(repo, logger.NewNopLogger())
	err := h.CreateNotification(context.Background(), map[string]string{
		"feature":    "playlists",
		"recipients": "u1, u2,u3",
	})
	assert.NoError(t, err)
}
