package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository"
)

// DigestService 把一个时间窗口内的未读通知聚合成一条消息
// 幂等性靠用户身上的水位线 LastDigestedAt：
// 只取水位线之后创建的通知，生成成功才推进水位线，
// 同一个周期跑两遍，第二遍的窗口是空的，不会产生重复内容。
type DigestService interface {
	Generate(ctx context.Context, uid string, period domain.DigestPeriod) (domain.Digest, error)
}

type digestService struct {
	userRepo  repository.UserRepository
	notifRepo repository.NotificationRepository
	// now 可以在测试里替换掉
	now func() time.Time
}

func NewDigestService(userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository) DigestService {
	return &digestService{
		userRepo:  userRepo,
		notifRepo: notifRepo,
		now:       time.Now,
	}
}

func (svc *digestService) Generate(ctx context.Context,
	uid string, period domain.DigestPeriod) (domain.Digest, error) {
	if uid == "" {
		return domain.Digest{}, domain.ErrInvalidInput
	}
	var span time.Duration
	switch period {
	case domain.DigestPeriodDaily:
		span = time.Hour * 24
	case domain.DigestPeriodWeekly:
		span = time.Hour * 24 * 7
	default:
		return domain.Digest{}, domain.ErrInvalidInput
	}
	u, err := svc.userRepo.FindByID(ctx, uid)
	if err != nil {
		return domain.Digest{}, err
	}
	now := svc.now()
	since := u.LastDigestedAt
	if since.IsZero() {
		// 从来没出过摘要，只回看一个周期，别把陈年通知全翻出来
		since = now.Add(-span)
	}
	entries, err := svc.notifRepo.ListUnreadSince(ctx, uid, since)
	if err != nil {
		return domain.Digest{}, err
	}
	if len(entries) == 0 {
		// 窗口是空的，不产出摘要，也不动水位线
		return domain.Digest{
			RecipientID: uid,
			Period:      period,
		}, nil
	}
	digest := domain.Digest{
		RecipientID: uid,
		Period:      period,
		Entries:     entries,
		Body:        svc.render(entries),
		GeneratedAt: now,
	}
	// 水位线推进成功了，这份摘要才算生成完
	err = svc.userRepo.UpdateLastDigestedAt(ctx, uid, now)
	if err != nil {
		return domain.Digest{}, err
	}
	return digest, nil
}

var digestLabels = map[domain.NotificationKind]string{
	domain.NotificationKindNewFollower: "个新粉丝",
	domain.NotificationKindNewLike:     "个新点赞",
	domain.NotificationKindNewComment:  "条新评论",
	domain.NotificationKindNewPost:     "条关注的人的新帖",
	domain.NotificationKindNewFeature:  "条新功能公告",
}

// render 一种通知一句话，而不是 N 条通知 N 句话
func (svc *digestService) render(entries []domain.Notification) string {
	cnt := make(map[domain.NotificationKind]int)
	for _, e := range entries {
		cnt[e.Kind]++
	}
	kinds := make([]string, 0, len(cnt))
	for k := range cnt {
		kinds = append(kinds, string(k))
	}
	// map 遍历顺序不稳定，排一下，同样的窗口渲染出来的正文要一字不差
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		kind := domain.NotificationKind(k)
		parts = append(parts, fmt.Sprintf("%d%s", cnt[kind], digestLabels[kind]))
	}
	return fmt.Sprintf("你有 %s", strings.Join(parts, "，"))
}
