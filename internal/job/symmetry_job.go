package job

import (
	"context"
	"sync"
	"time"

	rlock "github.com/gotomicro/redis-lock"
	"github.com/malk-tv/malk/internal/repository"
	"github.com/malk-tv/malk/pkg/logger"
)

// SymmetryJob 对称性修复
// 两侧写入中途失败会留下单边的关注关系，没有任何机制让它自愈，
// 只能靠这个任务定期扫全量用户把两个集合重新对齐。
// 对齐的时候以关注者自己的 Following 为准，
// 这和读路径"操作者自己的集合是权威"的口径是一致的。
// 最坏的脏数据窗口就是一个调度间隔。
type SymmetryJob struct {
	userRepo  repository.UserRepository
	relRepo   repository.RelationshipRepository
	timeout   time.Duration
	client    *rlock.Client
	key       string
	l         logger.LoggerV1
	lock      *rlock.Lock
	localLock *sync.Mutex
}

func NewSymmetryJob(userRepo repository.UserRepository,
	relRepo repository.RelationshipRepository,
	client *rlock.Client,
	l logger.LoggerV1,
	timeout time.Duration) *SymmetryJob {
	return &SymmetryJob{
		userRepo:  userRepo,
		relRepo:   relRepo,
		timeout:   timeout,
		client:    client,
		key:       "rlock:cron_job:follow_symmetry",
		l:         l,
		localLock: &sync.Mutex{},
	}
}

func (j *SymmetryJob) Name() string { return "follow_symmetry" }

func (j *SymmetryJob) Run() error {
	j.localLock.Lock()
	defer j.localLock.Unlock()
	if j.lock == nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		lock, err := j.client.Lock(ctx, j.key, j.timeout, &rlock.FixIntervalRetry{
			Interval: time.Millisecond * 100,
			Max:      0,
		}, time.Second)
		if err != nil {
			return nil
		}
		j.lock = lock
		go func() {
			err1 := lock.AutoRefresh(j.timeout/2, time.Second)
			if err1 != nil {
				j.l.Error("修复任务锁续约失败", logger.Error(err1))
			}
			j.localLock.Lock()
			j.lock = nil
			j.localLock.Unlock()
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	return j.sweep(ctx)
}

func (j *SymmetryJob) sweep(ctx context.Context) error {
	const batchSize = 50
	offset := ""
	for {
		users, next, err := j.userRepo.List(ctx, offset, batchSize)
		if err != nil {
			return err
		}
		for _, u := range users {
			// 我关注的人的 FollowedBy 里得有我
			for _, peerID := range u.Following {
				peer, err := j.userRepo.FindByID(ctx, peerID)
				if err != nil {
					j.l.Error("修复时加载对端失败",
						logger.Error(err),
						logger.String("uid", u.ID),
						logger.String("peer", peerID))
					continue
				}
				if err := j.relRepo.Remirror(ctx, u, peer); err != nil {
					j.l.Error("修复关注关系失败",
						logger.Error(err),
						logger.String("uid", u.ID),
						logger.String("peer", peerID))
				}
			}
			// 我的 FollowedBy 里的人得真的在关注我
			for _, followerID := range u.FollowedBy {
				follower, err := j.userRepo.FindByID(ctx, followerID)
				if err != nil {
					j.l.Error("修复时加载对端失败",
						logger.Error(err),
						logger.String("uid", u.ID),
						logger.String("peer", followerID))
					continue
				}
				if err := j.relRepo.Remirror(ctx, follower, u); err != nil {
					j.l.Error("修复关注关系失败",
						logger.Error(err),
						logger.String("uid", u.ID),
						logger.String("peer", followerID))
				}
			}
		}
		if next == "" {
			return nil
		}
		offset = next
	}
}

func (j *SymmetryJob) Close() error {
	j.localLock.Lock()
	lock := j.lock
	j.lock = nil
	j.localLock.Unlock()
	if lock == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return lock.Unlock(ctx)
}
