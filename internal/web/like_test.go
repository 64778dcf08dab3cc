package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	svcmocks "github.com/malk-tv/malk/internal/service/mocks"
	"github.com/malk-tv/malk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLikeHandler_Toggle(t *testing.T) {
	t.Run("点赞成功，带回最新计数", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockLikeService(ctrl)
		svc.EXPECT().ToggleLike(gomock.Any(), "u1", "p1").
			Return(true, int64(5), nil)
		h := NewLikeHandler(svc, logger.NewNopLogger())
		server := newTestServer("u1", h.RegisterRoutes)

		req, _ := http.NewRequest(http.MethodPost, "/likes/toggle",
			bytes.NewBufferString(`{"postId":"p1"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"code":0,"msg":"OK","data":{"liked":true,"likeCount":5}}`,
			resp.Body.String())
	})

	t.Run("取消点赞", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockLikeService(ctrl)
		svc.EXPECT().ToggleLike(gomock.Any(), "u1", "p1").
			Return(false, int64(4), nil)
		h := NewLikeHandler(svc, logger.NewNopLogger())
		server := newTestServer("u1", h.RegisterRoutes)

		req, _ := http.NewRequest(http.MethodPost, "/likes/toggle",
			bytes.NewBufferString(`{"postId":"p1"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"code":0,"msg":"OK","data":{"liked":false,"likeCount":4}}`,
			resp.Body.String())
	})

	t.Run("没有登录态", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockLikeService(ctrl)
		h := NewLikeHandler(svc, logger.NewNopLogger())
		server := newTestServer("", h.RegisterRoutes)

		req, _ := http.NewRequest(http.MethodPost, "/likes/toggle",
			bytes.NewBufferString(`{"postId":"p1"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		server.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestLikeHandler_Mine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockLikeService(ctrl)
	svc.EXPECT().GetLikedPostIDs(gomock.Any(), "u1").
		Return([]string{"p1", "p2"}, nil)
	h := NewLikeHandler(svc, logger.NewNopLogger())
	server := newTestServer("u1", h.RegisterRoutes)

	req, _ := http.NewRequest(http.MethodGet, "/likes/mine", nil)
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"code":0,"msg":"OK","data":{"postIds":["p1","p2"]}}`,
		resp.Body.String())
}
