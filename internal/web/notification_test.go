package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/malk-tv/malk/internal/domain"
	svcmocks "github.com/malk-tv/malk/internal/service/mocks"
	"github.com/malk-tv/malk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_List(t *testing.T) {
	t.Run("只看自己的，收件人取自登录态", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockNotificationService(ctrl)
		ctime := time.UnixMilli(1709265600000)
		svc.EXPECT().List(gomock.Any(), "u1", false).
			Return([]domain.Notification{
				{
					ID:          "n1",
					RecipientID: "u1",
					Kind:        domain.NotificationKindNewFollower,
					Payload:     map[string]string{"actor": "u2"},
					Ctime:       ctime,
				},
			}, nil)
		h := NewNotificationHandler(svc, logger.NewNopLogger())
		server := newTestServer("u1", h.RegisterRoutes)

		req, _ := http.NewRequest(http.MethodGet, "/notifications", nil)
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"code":0,"msg":"OK","data":{"notifications":[
			{"id":"n1","kind":"new_follower","payload":{"actor":"u2"},"read":false,"ctime":1709265600000}
		]}}`, resp.Body.String())
	})

	t.Run("onlyUnread 透传给下层", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockNotificationService(ctrl)
		svc.EXPECT().List(gomock.Any(), "u1", true).
			Return([]domain.Notification{}, nil)
		h := NewNotificationHandler(svc, logger.NewNopLogger())
		server := newTestServer("u1", h.RegisterRoutes)

		req, _ := http.NewRequest(http.MethodGet, "/notifications?onlyUnread=true", nil)
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	t.Run("标记已读", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockNotificationService(ctrl)
		svc.EXPECT().MarkRead(gomock.Any(), "u1", "n1").Return(nil)
		h := NewNotificationHandler(svc, logger.NewNopLogger())
		server := newTestServer("u1", h.RegisterRoutes)

		req, _ := http.NewRequest(http.MethodPatch, "/notifications/n1/read", nil)
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"code":0,"msg":"OK","data":{"ok":true}}`,
			resp.Body.String())
	})

	t.Run("别人的通知当不存在", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockNotificationService(ctrl)
		svc.EXPECT().MarkRead(gomock.Any(), "u1", "n2").
			Return(domain.ErrNotFound)
		h := NewNotificationHandler(svc, logger.NewNopLogger())
		server := newTestServer("u1", h.RegisterRoutes)

		req, _ := http.NewRequest(http.MethodPatch, "/notifications/n2/read", nil)
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.JSONEq(t, `{"code":4,"msg":"数据不存在"}`, resp.Body.String())
	})
}
