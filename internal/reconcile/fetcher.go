package reconcile

import (
	"context"

	"github.com/malk-tv/malk/internal/service"
)

// ServiceFetcher 进程内直连 service 的实现
// 浏览器那头走 HTTP 的 /likes/mine 和 /relationships/following，
// 语义跟这里是一样的
type ServiceFetcher struct {
	likeSvc service.LikeService
	relSvc  service.RelationshipService
}

func NewServiceFetcher(likeSvc service.LikeService,
	relSvc service.RelationshipService) *ServiceFetcher {
	return &ServiceFetcher{
		likeSvc: likeSvc,
		relSvc:  relSvc,
	}
}

func (f *ServiceFetcher) LikedPostIDs(ctx context.Context, uid string) ([]string, error) {
	return f.likeSvc.GetLikedPostIDs(ctx, uid)
}

func (f *ServiceFetcher) FollowedUserIDs(ctx context.Context, uid string) ([]string, error) {
	return f.relSvc.GetFollowing(ctx, uid)
}
